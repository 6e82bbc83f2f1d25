package player

import (
	"fmt"

	"github.com/sethgrid/harvest/internal/inventory"
)

type Facing string

const (
	FacingUp    Facing = "UP"
	FacingDown  Facing = "DOWN"
	FacingLeft  Facing = "LEFT"
	FacingRight Facing = "RIGHT"
)

// Delta returns the one-step offset for the direction.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingDown:
		return 0, 1
	case FacingLeft:
		return -1, 0
	case FacingRight:
		return 1, 0
	default:
		panic(fmt.Sprintf("player: invalid facing %q", string(f)))
	}
}

func (f Facing) Valid() bool {
	switch f {
	case FacingUp, FacingDown, FacingLeft, FacingRight:
		return true
	default:
		return false
	}
}

// FacingFor maps a unit step to a direction.
func FacingFor(dx, dy int) (Facing, bool) {
	switch {
	case dx == 0 && dy == -1:
		return FacingUp, true
	case dx == 0 && dy == 1:
		return FacingDown, true
	case dx == -1 && dy == 0:
		return FacingLeft, true
	case dx == 1 && dy == 0:
		return FacingRight, true
	default:
		return "", false
	}
}

// ParseFacing accepts the usual spellings of a direction, including wasd.
func ParseFacing(s string) (Facing, bool) {
	switch s {
	case "up", "UP", "w", "north":
		return FacingUp, true
	case "down", "DOWN", "s", "south":
		return FacingDown, true
	case "left", "LEFT", "a", "west":
		return FacingLeft, true
	case "right", "RIGHT", "d", "east":
		return FacingRight, true
	default:
		return "", false
	}
}

type Player struct {
	X         int
	Y         int
	Facing    Facing
	Money     int
	Energy    int
	MaxEnergy int
	Inventory inventory.Inventory
}

// Target returns the coordinate one step ahead of the player.
func (p Player) Target() (x, y int) {
	dx, dy := p.Facing.Delta()
	return p.X + dx, p.Y + dy
}

func (p Player) Rested() Player {
	p.Energy = p.MaxEnergy
	return p
}
