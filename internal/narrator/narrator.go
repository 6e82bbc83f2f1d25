// Package narrator produces flavour dialogue from the mayor. Narration never
// affects gameplay; every failure degrades to a canned line.
package narrator

import (
	"context"
	"fmt"

	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/player"
	"github.com/sethgrid/harvest/internal/status"
)

// Canned lines
const (
	FallbackEmpty = "Hoo hoo! Welcome to the valley! Don't forget to water your crops!"
	FallbackQuiet = "Hoo hoo! The spirits are quiet today."
)

// Request carries the facts the narrator may comment on.
type Request struct {
	ID           string
	Player       player.Player
	State        farm.GameState
	RecentAction string
	Status       status.Derived
}

// Narrator is an external, possibly slow, source of dialogue.
type Narrator interface {
	Comment(ctx context.Context, req Request) (string, error)
}

// Mayor is a deterministic narrator that picks a tip from the player's most
// pressing condition.
type Mayor struct{}

func (Mayor) Comment(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch req.Status.Primary {
	case status.CondExhausted, status.CondTired:
		return "Hoo hoo! You look worn out, farmer. Head home and get some sleep.", nil
	case status.CondHarvestReady:
		return "Hoo hoo! Something in your field is ripe. Harvest it and fill that purse!", nil
	case status.CondThirsty:
		return "Hoo hoo! Your crops look parched. Grab the watering can before nightfall.", nil
	case status.CondRainy:
		return "Hoo hoo! The rain is doing your watering today. Enjoy the break!", nil
	case status.CondWealthy:
		return fmt.Sprintf("Hoo hoo! %dG is a heavy purse. The shop has fresh seeds, you know.", req.Player.Money), nil
	case status.CondBroke:
		return "Hoo hoo! Money is tight. A turnip harvest would fix that.", nil
	}

	if req.RecentAction == "" {
		return "", nil
	}
	return fmt.Sprintf("Hoo hoo! Day %d, and I hear: %q. Keep it up!", req.State.Day, req.RecentAction), nil
}
