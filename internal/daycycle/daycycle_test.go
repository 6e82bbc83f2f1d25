package daycycle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/player"
)

// fixedRoller replays a list of rolls, repeating the last one.
type fixedRoller struct {
	rolls []float64
	i     int
}

func (f *fixedRoller) Float64() float64 {
	v := f.rolls[min(f.i, len(f.rolls)-1)]
	f.i++
	return v
}

func sunny() *fixedRoller { return &fixedRoller{rolls: []float64{0.9}} }
func rainy() *fixedRoller { return &fixedRoller{rolls: []float64{0.1}} }

func newCycle(r Roller) *Cycle {
	return &Cycle{Crops: farm.DefaultCatalog(), RainChance: DefaultRainChance, StartTime: farm.DayStartTime, Roller: r}
}

func plantedGrid(kind farm.CropKind, watered bool) farm.Grid {
	crop := farm.NewCrop(kind)
	return farm.Generate(farm.DefaultWidth, farm.DefaultHeight).WithTile(4, 4, func(t *farm.Tile) {
		t.Type = farm.TileDirt
		t.Tilled = true
		t.Watered = watered
		t.Crop = &crop
	})
}

func water(g farm.Grid) farm.Grid {
	return g.WithTile(4, 4, func(t *farm.Tile) { t.Watered = true })
}

func TestAdvanceClockAndEnergy(t *testing.T) {
	c := newCycle(sunny())
	g := farm.Generate(farm.DefaultWidth, farm.DefaultHeight)
	p := player.Player{Energy: 10, MaxEnergy: 100}
	s := farm.GameState{Day: 4, Time: 1800, Weather: farm.WeatherRainy}

	res := c.Advance(g, p, s)

	assert.Equal(t, 5, res.State.Day)
	assert.Equal(t, farm.DayStartTime, res.State.Time)
	assert.Equal(t, farm.WeatherSunny, res.State.Weather)
	assert.Equal(t, 100, res.Player.Energy)
	assert.Equal(t, 10, p.Energy)
}

func TestAdvanceWeatherRoll(t *testing.T) {
	s := farm.NewGameState()
	g := farm.Generate(farm.DefaultWidth, farm.DefaultHeight)

	assert.Equal(t, farm.WeatherRainy, newCycle(rainy()).Advance(g, player.Player{}, s).State.Weather)
	assert.Equal(t, farm.WeatherSunny, newCycle(sunny()).Advance(g, player.Player{}, s).State.Weather)
	assert.Equal(t, farm.WeatherSunny, newCycle(nil).Advance(g, player.Player{}, s).State.Weather)
}

func TestAdvanceWeatherRateIsRoughlyOneInFive(t *testing.T) {
	c := newCycle(rand.New(rand.NewSource(42)))
	g := farm.Generate(4, 4)
	s := farm.NewGameState()

	rainyDays := 0
	for i := 0; i < 2000; i++ {
		res := c.Advance(g, player.Player{}, s)
		s = res.State
		if s.Raining() {
			rainyDays++
		}
	}
	assert.InDelta(t, 400, rainyDays, 80)
}

func TestAdvanceDriesSoilEvenWhenRaining(t *testing.T) {
	g := plantedGrid(farm.CropTurnip, true)

	res := newCycle(rainy()).Advance(g, player.Player{}, farm.NewGameState())
	assert.False(t, res.Grid.Tile(4, 4).Watered)
	assert.True(t, g.Tile(4, 4).Watered, "previous snapshot untouched")
}

func TestAdvanceGrowsWateredCrops(t *testing.T) {
	c := newCycle(sunny())
	g := plantedGrid(farm.CropTurnip, false)
	s := farm.NewGameState()
	p := player.Player{}

	want := []farm.GrowthState{farm.StateSprout, farm.StateGrowing, farm.StateRipe}
	for day, state := range want {
		res := c.Advance(water(g), p, s)
		g, s = res.Grid, res.State
		crop := g.Tile(4, 4).Crop
		require.NotNil(t, crop)
		assert.Equal(t, state, crop.State, "day %d", day+1)
		assert.Equal(t, day+1, crop.DaysPlanted)
	}

	// A dry day leaves a ripe crop ripe, and it no longer ages.
	res := c.Advance(g, p, s)
	assert.Equal(t, farm.StateRipe, res.Grid.Tile(4, 4).Crop.State)
	assert.Equal(t, 3, res.Grid.Tile(4, 4).Crop.DaysPlanted)
}

func TestAdvanceDeadCropsDoNotAge(t *testing.T) {
	dead := farm.Crop{Kind: farm.CropCorn, State: farm.StateDead, DaysPlanted: 2}
	g := farm.Generate(farm.DefaultWidth, farm.DefaultHeight).WithTile(4, 4, func(t *farm.Tile) {
		t.Type = farm.TileDirt
		t.Tilled = true
		t.Crop = &dead
	})

	res := newCycle(rainy()).Advance(g, player.Player{}, farm.NewGameState())
	assert.Equal(t, dead, *res.Grid.Tile(4, 4).Crop)
}

func TestAdvanceStallsUnwateredCrops(t *testing.T) {
	c := newCycle(sunny())
	g := plantedGrid(farm.CropCorn, false)
	s := farm.NewGameState()

	for i := 0; i < 7; i++ {
		res := c.Advance(g, player.Player{}, s)
		g, s = res.Grid, res.State
	}

	crop := g.Tile(4, 4).Crop
	assert.Equal(t, 0, crop.DaysWatered)
	assert.Equal(t, farm.StateSeed, crop.State)
	assert.Equal(t, 7, crop.DaysPlanted)
}

func TestAdvanceRainWatersEverything(t *testing.T) {
	g := plantedGrid(farm.CropTurnip, false)
	res := newCycle(rainy()).Advance(g, player.Player{}, farm.NewGameState())
	assert.Equal(t, 1, res.Grid.Tile(4, 4).Crop.DaysWatered)
}

func TestAdvanceDoesNotShareCrops(t *testing.T) {
	g := plantedGrid(farm.CropTurnip, true)
	before := g.Tile(4, 4).Crop

	newCycle(sunny()).Advance(g, player.Player{}, farm.NewGameState())
	assert.Equal(t, 0, before.DaysWatered)
	assert.Equal(t, farm.StateSeed, before.State)
}
