// Package engine owns the single authoritative game session. Every command
// runs to completion under the engine's lock and publishes a new snapshot;
// snapshots handed out earlier never change.
package engine

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sethgrid/harvest/internal/action"
	"github.com/sethgrid/harvest/internal/config"
	"github.com/sethgrid/harvest/internal/daycycle"
	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/narrator"
	"github.com/sethgrid/harvest/internal/player"
	"github.com/sethgrid/harvest/internal/shop"
	"github.com/sethgrid/harvest/internal/stats"
	"github.com/sethgrid/harvest/internal/status"
)

// Log and message texts
const (
	MsgWelcome     = "Welcome to Harvest Valley!"
	MsgJustStarted = "Just started the day."
	MsgSlept       = "You slept well. A new day begins!"
	MsgNotForSale  = "That item is not for sale."
	msgBoughtFmt   = "Bought %s."
	msgBrokeFmt    = "Not enough money for %s."

	// MessageLogSize is how many messages the log keeps.
	MessageLogSize = 5
)

// Snapshot is a read-only view of the session at one version.
type Snapshot struct {
	Grid         farm.Grid
	Player       player.Player
	State        farm.GameState
	Version      uint64
	Messages     []string // newest first
	RecentAction string
}

// Outcome is what every command returns. Message is empty when the command
// had nothing to say.
type Outcome struct {
	Snapshot
	Message string
	Signal  action.Signal
}

// Comment is a narrator reply tagged with the version it was asked about.
// Stale is set when the session moved on while the narrator was thinking.
type Comment struct {
	narrator.Reply
	Version uint64
	Stale   bool
}

type options struct {
	roller          daycycle.Roller
	narrator        narrator.Narrator
	narratorTimeout time.Duration
	log             zerolog.Logger
}

type Option func(*options)

// WithRoller sets the weather source.
func WithRoller(r daycycle.Roller) Option {
	return func(o *options) { o.roller = r }
}

// WithSeed makes the weather reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.roller = rand.New(rand.NewPCG(uint64(seed), uint64(seed))) }
}

func WithNarrator(n narrator.Narrator) Option {
	return func(o *options) { o.narrator = n }
}

func WithNarratorTimeout(d time.Duration) Option {
	return func(o *options) { o.narratorTimeout = d }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

type Engine struct {
	mu sync.RWMutex

	grid    farm.Grid
	player  player.Player
	state   farm.GameState
	version uint64

	messages     []string
	recentAction string

	crops      farm.Catalog
	stock      shop.Stock
	actionCost int
	resolver   *action.Resolver
	cycle      *daycycle.Cycle
	guard      *narrator.Guard
	log        zerolog.Logger
}

// New starts a session on day one from rules. Without options the weather
// is seeded from the clock, the mayor narrates and nothing is logged.
func New(rules config.Rules, opts ...Option) (*Engine, error) {
	if err := config.Validate(rules); err != nil {
		return nil, err
	}

	o := options{
		narrator:        narrator.Mayor{},
		narratorTimeout: narrator.DefaultTimeout,
		log:             zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.roller == nil {
		now := uint64(time.Now().UnixNano())
		o.roller = rand.New(rand.NewPCG(now, now>>1))
	}

	guard, err := narrator.NewGuard(o.narrator, o.narratorTimeout, narrator.DefaultCacheSize, o.log)
	if err != nil {
		return nil, fmt.Errorf("failed to create narrator guard: %w", err)
	}

	crops := rules.Catalog()
	e := &Engine{
		grid:         rules.NewGrid(),
		player:       rules.NewPlayer(),
		state:        rules.NewGameState(),
		messages:     []string{MsgWelcome},
		recentAction: MsgJustStarted,
		crops:        crops,
		stock:        rules.Stock(),
		actionCost:   rules.ActionCost,
		resolver:     action.NewResolver(crops, rules.ActionCost),
		cycle: &daycycle.Cycle{
			Crops:      crops,
			RainChance: rules.RainChance,
			StartTime:  rules.DayStartTime,
			Roller:     o.roller,
		},
		guard: guard,
		log:   o.log,
	}

	e.log.Info().
		Int("width", e.grid.Width()).
		Int("height", e.grid.Height()).
		Int("money", e.player.Money).
		Msg("session started")
	return e, nil
}

// Crops returns a copy of the crop table the session was built with.
func (e *Engine) Crops() farm.Catalog { return maps.Clone(e.crops) }

// Stock returns a copy of the shop's items.
func (e *Engine) Stock() shop.Stock {
	out := make(shop.Stock, len(e.stock))
	copy(out, e.stock)
	return out
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshot()
}

func (e *Engine) Grid() farm.Grid {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid
}

func (e *Engine) Player() player.Player {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.player
}

func (e *Engine) State() farm.GameState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Move turns the player and steps if the way is clear. Directions outside
// the four compass points are ignored.
func (e *Engine) Move(dir player.Facing) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !dir.Valid() {
		return e.outcome("", action.SignalNone)
	}
	e.player = action.Move(e.player, e.grid, dir)
	return e.commit("move", "", action.SignalNone)
}

// Interact acts on the tile the player is facing.
func (e *Engine) Interact() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	res := e.resolver.Interact(e.player, e.grid)
	e.player, e.grid = res.Player, res.Grid
	return e.commit("interact", res.Message, res.Signal)
}

// Sleep ends the day.
func (e *Engine) Sleep() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.cycle.Advance(e.grid, e.player, e.state)
	e.grid, e.player, e.state = next.Grid, next.Player, next.State
	return e.commit("sleep", MsgSlept, action.SignalNone)
}

// Buy purchases one unit of the shop item with the given id.
func (e *Engine) Buy(itemID string) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, err := e.stock.Lookup(itemID)
	if err != nil {
		return e.commit("buy", MsgNotForSale, action.SignalNone)
	}

	p, err := shop.Buy(e.player, item)
	switch {
	case errors.Is(err, shop.ErrInsufficientFunds):
		return e.commit("buy", fmt.Sprintf(msgBrokeFmt, item.Name), action.SignalNone)
	case err != nil:
		return e.commit("buy", err.Error(), action.SignalNone)
	}
	e.player = p
	return e.commit("buy", fmt.Sprintf(msgBoughtFmt, item.Name), action.SignalNone)
}

// SelectInventory moves the cursor. Invalid indexes are ignored.
func (e *Engine) SelectInventory(index int) Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	inv, err := e.player.Inventory.Select(index)
	if err != nil {
		return e.outcome("", action.SignalNone)
	}
	e.player.Inventory = inv
	return e.commit("select", "", action.SignalNone)
}

func (e *Engine) CycleInventory() Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.player.Inventory = e.player.Inventory.Cycle()
	return e.commit("cycle", "", action.SignalNone)
}

// Status derives the player's conditions from the current snapshot.
func (e *Engine) Status() status.Derived {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status()
}

func (e *Engine) Field() stats.Field {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return stats.Survey(e.grid, e.crops)
}

// RequestComment asks the narrator about the current snapshot. The call runs
// without holding the engine lock, so commands keep flowing while it waits.
func (e *Engine) RequestComment(ctx context.Context) Comment {
	e.mu.RLock()
	req := narrator.Request{
		ID:           uuid.NewString(),
		Player:       e.player,
		State:        e.state,
		RecentAction: e.recentAction,
		Status:       e.status(),
	}
	asked := e.version
	e.mu.RUnlock()

	reply := e.guard.Ask(ctx, req)

	e.mu.RLock()
	stale := e.version != asked
	e.mu.RUnlock()

	if stale {
		e.log.Debug().Str("request_id", req.ID).Uint64("asked", asked).Msg("narrator reply is stale")
	}
	return Comment{Reply: reply, Version: asked, Stale: stale}
}

// RequestCommentAsync runs RequestComment in the background. The channel
// receives exactly one Comment.
func (e *Engine) RequestCommentAsync(ctx context.Context) <-chan Comment {
	out := make(chan Comment, 1)
	go func() {
		out <- e.RequestComment(ctx)
	}()
	return out
}

func (e *Engine) status() status.Derived {
	return status.Derive(status.Input{
		Player:       e.player,
		State:        e.state,
		Field:        stats.Survey(e.grid, e.crops),
		ActionCost:   e.actionCost,
		CheapestSeed: e.stock.Cheapest(),
	})
}

// commit publishes the new version and records msg. Callers hold mu.
func (e *Engine) commit(command, msg string, sig action.Signal) Outcome {
	e.version++
	if msg != "" {
		e.messages = append([]string{msg}, e.messages...)
		if len(e.messages) > MessageLogSize {
			e.messages = e.messages[:MessageLogSize]
		}
		e.recentAction = msg
	}

	e.log.Debug().
		Str("command", command).
		Int("day", e.state.Day).
		Int("x", e.player.X).
		Int("y", e.player.Y).
		Int("energy", e.player.Energy).
		Str("signal", sig.String()).
		Str("message", msg).
		Uint64("version", e.version).
		Msg("command applied")

	return e.outcome(msg, sig)
}

func (e *Engine) outcome(msg string, sig action.Signal) Outcome {
	return Outcome{Snapshot: e.snapshot(), Message: msg, Signal: sig}
}

func (e *Engine) snapshot() Snapshot {
	msgs := make([]string, len(e.messages))
	copy(msgs, e.messages)
	return Snapshot{
		Grid:         e.grid,
		Player:       e.player,
		State:        e.state,
		Version:      e.version,
		Messages:     msgs,
		RecentAction: e.recentAction,
	}
}
