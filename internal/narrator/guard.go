package narrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// Defaults for the guard.
const (
	DefaultTimeout   = 3 * time.Second
	DefaultCacheSize = 64
)

var ErrNarratorUnavailable = errors.New("narrator unavailable")

// Reply is what the guard hands back: always some text, flagged when it is a
// canned fallback or came from the cache.
type Reply struct {
	Text     string
	Fallback bool
	Cached   bool
	Err      error
}

// Guard bounds a Narrator with a timeout, substitutes canned lines on failure
// and caches answers for identical prompts.
type Guard struct {
	next    Narrator
	timeout time.Duration
	cache   *lru.Cache[string, string]
	log     zerolog.Logger
}

func NewGuard(next Narrator, timeout time.Duration, cacheSize int, log zerolog.Logger) (*Guard, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create narrator cache: %w", err)
	}
	return &Guard{next: next, timeout: timeout, cache: cache, log: log}, nil
}

// Ask never fails: timeouts and errors become FallbackQuiet, an empty answer
// becomes FallbackEmpty.
func (g *Guard) Ask(ctx context.Context, req Request) Reply {
	key := cacheKey(req)
	if text, ok := g.cache.Get(key); ok {
		return Reply{Text: text, Cached: true}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	type answer struct {
		text string
		err  error
	}
	done := make(chan answer, 1)
	go func() {
		text, err := g.next.Comment(ctx, req)
		done <- answer{text: text, err: err}
	}()

	var got answer
	select {
	case got = <-done:
	case <-ctx.Done():
		got = answer{err: ctx.Err()}
	}

	if got.err != nil {
		err := fmt.Errorf("%w: %w", ErrNarratorUnavailable, got.err)
		g.log.Warn().Err(err).Str("request_id", req.ID).Dur("timeout", g.timeout).Msg("narrator failed, using fallback")
		return Reply{Text: FallbackQuiet, Fallback: true, Err: err}
	}
	if got.text == "" {
		return Reply{Text: FallbackEmpty, Fallback: true}
	}

	g.cache.Add(key, got.text)
	return Reply{Text: got.text}
}

func cacheKey(req Request) string {
	return fmt.Sprintf("%d|%s|%d|%d/%d|%s|%s",
		req.State.Day,
		req.State.Weather,
		req.Player.Money,
		req.Player.Energy,
		req.Player.MaxEnergy,
		req.Status.Primary,
		req.RecentAction,
	)
}
