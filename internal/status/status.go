package status

import (
	"strings"

	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/player"
	"github.com/sethgrid/harvest/internal/stats"
)

type Condition string

const (
	CondExhausted    Condition = "exhausted"
	CondTired        Condition = "tired"
	CondHarvestReady Condition = "harvest-ready"
	CondThirsty      Condition = "thirsty-crops"
	CondRainy        Condition = "rainy"
	CondWealthy      Condition = "wealthy"
	CondBroke        Condition = "broke"
	CondContent      Condition = "content"
)

const (
	// TiredPercent matches the HUD's low-energy warning.
	TiredPercent = 20
	WealthyMoney = 300
)

// Input is everything the conditions are derived from.
type Input struct {
	Player       player.Player
	State        farm.GameState
	Field        stats.Field
	ActionCost   int
	CheapestSeed int
}

type Derived struct {
	Conditions map[Condition]bool
	Primary    Condition
	AllOrdered []Condition
}

func (d Derived) Has(c Condition) bool {
	return d.Conditions[c]
}

// Derive lists the active conditions in priority order.
func Derive(in Input) Derived {
	conds := make(map[Condition]bool)
	var ordered []Condition
	add := func(c Condition) {
		if !conds[c] {
			conds[c] = true
			ordered = append(ordered, c)
		}
	}

	// Priority 1: exhausted
	if in.Player.Energy < in.ActionCost {
		add(CondExhausted)
	}

	// Priority 2: tired
	if stats.EnergyPercent(in.Player.Energy, in.Player.MaxEnergy) < TiredPercent {
		add(CondTired)
	}

	// Priority 3: something to harvest
	if in.Field.Ripe > 0 {
		add(CondHarvestReady)
	}

	// Priority 4: crops need water and the sky won't help
	if in.Field.Thirsty > 0 && !in.State.Raining() {
		add(CondThirsty)
	}

	if in.State.Raining() {
		add(CondRainy)
	}

	if in.Player.Money >= WealthyMoney {
		add(CondWealthy)
	} else if in.CheapestSeed > 0 && in.Player.Money < in.CheapestSeed {
		add(CondBroke)
	}

	if len(ordered) == 0 {
		add(CondContent)
	}

	return Derived{Conditions: conds, Primary: ordered[0], AllOrdered: ordered}
}

// FormatConditions joins conditions with commas. An exhausted player is only
// ever "exhausted", whatever else is going on.
func FormatConditions(conds []Condition) string {
	if len(conds) == 0 {
		return string(CondContent)
	}

	var parts []string
	for _, c := range conds {
		if c == CondExhausted {
			return string(CondExhausted)
		}
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}
