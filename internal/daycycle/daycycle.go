package daycycle

import (
	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/player"
)

// DefaultRainChance is the probability that a new day is rainy.
const DefaultRainChance = 0.2

// Roller supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// Cycle advances the calendar. It holds no game state of its own.
type Cycle struct {
	Crops      farm.Catalog
	RainChance float64
	StartTime  int
	Roller     Roller
}

// Result is the next morning.
type Result struct {
	Grid   farm.Grid
	Player player.Player
	State  farm.GameState
}

// Advance moves to the next day: bumps the day counter, resets the clock,
// rolls the weather, restores energy and grows every crop. A crop ages one
// day per night until it is ripe or dead. Soil always dries
// overnight, rain or not.
func (c *Cycle) Advance(g farm.Grid, p player.Player, s farm.GameState) Result {
	next := farm.GameState{
		Day:     s.Day + 1,
		Time:    c.StartTime,
		Weather: c.rollWeather(),
	}
	raining := next.Raining()

	grid := g.Map(func(t farm.Tile) farm.Tile {
		if t.Crop != nil {
			grown := farm.AdvanceCrop(*t.Crop, c.Crops.Spec(t.Crop.Kind), t.Watered, raining)
			// Age stops once the crop is finished.
			if !t.Crop.Ripe() && !t.Crop.Dead() {
				grown.DaysPlanted++
			}
			t.Crop = &grown
		}
		t.Watered = false
		return t
	})

	return Result{Grid: grid, Player: p.Rested(), State: next}
}

func (c *Cycle) rollWeather() farm.Weather {
	if c.Roller != nil && c.Roller.Float64() < c.RainChance {
		return farm.WeatherRainy
	}
	return farm.WeatherSunny
}
