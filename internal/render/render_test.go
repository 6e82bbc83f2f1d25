package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/inventory"
	"github.com/sethgrid/harvest/internal/player"
)

func TestCropGlyph(t *testing.T) {
	crops := farm.DefaultCatalog()

	tests := []struct {
		state farm.GrowthState
		kind  farm.CropKind
		want  rune
	}{
		{farm.StateSeed, farm.CropTurnip, GlyphSeed},
		{farm.StateSprout, farm.CropCorn, GlyphSprout},
		{farm.StateGrowing, farm.CropTurnip, 't'},
		{farm.StateGrowing, farm.CropCorn, 'c'},
		{farm.StateRipe, farm.CropTurnip, 'T'},
		{farm.StateRipe, farm.CropCorn, 'C'},
		{farm.StateDead, farm.CropCorn, GlyphDead},
	}

	for _, tt := range tests {
		t.Run(tt.state.String()+"/"+string(tt.kind), func(t *testing.T) {
			got := CropGlyph(farm.Crop{Kind: tt.kind, State: tt.state}, crops)
			assert.Equal(t, string(tt.want), string(got))
		})
	}
}

func TestTileGlyph(t *testing.T) {
	crops := farm.DefaultCatalog()

	assert.Equal(t, GlyphGrass, TileGlyph(farm.Tile{Type: farm.TileGrass}, crops))
	assert.Equal(t, GlyphDirt, TileGlyph(farm.Tile{Type: farm.TileDirt}, crops))
	assert.Equal(t, GlyphTilled, TileGlyph(farm.Tile{Type: farm.TileDirt, Tilled: true}, crops))
	assert.Equal(t, GlyphWatered, TileGlyph(farm.Tile{Type: farm.TileDirt, Tilled: true, Watered: true}, crops))
	assert.Equal(t, GlyphWater, TileGlyph(farm.Tile{Type: farm.TileWater}, crops))
	assert.Equal(t, GlyphHouse, TileGlyph(farm.Tile{Type: farm.TileHouse}, crops))
	assert.Equal(t, GlyphShop, TileGlyph(farm.Tile{Type: farm.TileShop}, crops))
	assert.Equal(t, GlyphMayor, TileGlyph(farm.Tile{Type: farm.TileMayor}, crops))

	crop := farm.NewCrop(farm.CropTurnip)
	planted := farm.Tile{Type: farm.TileDirt, Tilled: true, Watered: true, Crop: &crop}
	assert.Equal(t, GlyphSeed, TileGlyph(planted, crops), "crop hides the soil")
}

func TestMap(t *testing.T) {
	g := farm.Generate(farm.DefaultWidth, farm.DefaultHeight)
	p := player.Player{X: 7, Y: 5, Facing: player.FacingDown}

	out := Map(g, p, farm.DefaultCatalog())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, farm.DefaultHeight)
	for _, line := range lines {
		assert.Len(t, line, farm.DefaultWidth)
	}

	assert.Equal(t, byte(GlyphHouse), lines[farm.HouseY][farm.HouseX])
	assert.Equal(t, byte(GlyphShop), lines[farm.ShopY][farm.ShopX])
	assert.Equal(t, byte(GlyphMayor), lines[farm.MayorY][farm.MayorX])
	assert.Equal(t, byte(GlyphPlayer), lines[5][7])
	assert.Equal(t, byte(GlyphWater), lines[8][12])
	assert.Equal(t, byte(GlyphGrass), lines[9][14], "border stays grass")
}

func TestHUD(t *testing.T) {
	p := player.Player{Money: 260, Energy: 50, MaxEnergy: 100, Facing: player.FacingLeft}
	s := farm.GameState{Day: 4, Time: 600, Weather: farm.WeatherRainy}

	assert.Equal(t, "Day 4  06:00  Rainy  260G  Energy 50/100 (50%)  Facing left", HUD(p, s))
}

func TestInventoryBar(t *testing.T) {
	inv := inventory.New(
		inventory.Item{ID: "hoe", Name: "Hoe", Tool: inventory.ToolHoe, Count: inventory.Infinite},
		inventory.Item{ID: "seed_turnip", Name: "Turnip Seeds", Tool: inventory.ToolSeeds, Crop: farm.CropTurnip, Count: 5},
	)
	assert.Equal(t, "[0:Hoe] 1:Turnip Seeds x5", InventoryBar(inv))

	inv = inv.Cycle()
	assert.Equal(t, "0:Hoe [1:Turnip Seeds x5]", InventoryBar(inv))

	assert.Equal(t, "(empty)", InventoryBar(inventory.New()))
}

func TestFrame(t *testing.T) {
	v := View{
		Grid:   farm.Generate(5, 4),
		Player: player.Player{X: 1, Y: 1, Facing: player.FacingUp, Energy: 10, MaxEnergy: 10},
		State:  farm.NewGameState(),
		Crops:  farm.DefaultCatalog(),
	}
	out := Frame(v)
	assert.True(t, strings.HasPrefix(out, "Day 1  06:00  Sunny"))
	assert.Contains(t, out, "@")
	assert.True(t, strings.HasSuffix(out, "(empty)\n"))
}
