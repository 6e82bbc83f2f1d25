// Package render draws a farm snapshot as plain ASCII.
package render

import (
	"fmt"
	"strings"

	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/inventory"
	"github.com/sethgrid/harvest/internal/player"
	"github.com/sethgrid/harvest/internal/stats"
)

// Terrain glyphs
const (
	GlyphGrass   = '.'
	GlyphDirt    = ','
	GlyphTilled  = '='
	GlyphWatered = '~'
	GlyphWater   = 'o'
	GlyphHouse   = 'H'
	GlyphShop    = '$'
	GlyphMayor   = 'M'
	GlyphPlayer  = '@'

	GlyphSeed   = '*'
	GlyphSprout = '\''
	GlyphDead   = 'x'
)

// View is what a frame is drawn from.
type View struct {
	Grid   farm.Grid
	Player player.Player
	State  farm.GameState
	Crops  farm.Catalog
}

// Frame draws the HUD line, the map and the inventory bar.
func Frame(v View) string {
	var b strings.Builder
	b.WriteString(HUD(v.Player, v.State))
	b.WriteByte('\n')
	b.WriteString(Map(v.Grid, v.Player, v.Crops))
	b.WriteString(InventoryBar(v.Player.Inventory))
	b.WriteByte('\n')
	return b.String()
}

// Map draws one line per grid row, each terminated by a newline.
func Map(g farm.Grid, p player.Player, crops farm.Catalog) string {
	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())

	g.Each(func(t farm.Tile) {
		if t.X == p.X && t.Y == p.Y {
			b.WriteRune(GlyphPlayer)
		} else {
			b.WriteRune(TileGlyph(t, crops))
		}
		if t.X == g.Width()-1 {
			b.WriteByte('\n')
		}
	})
	return b.String()
}

// TileGlyph picks the character for one tile. A crop hides the soil under it.
func TileGlyph(t farm.Tile, crops farm.Catalog) rune {
	if t.Crop != nil {
		return CropGlyph(*t.Crop, crops)
	}

	switch t.Type {
	case farm.TileGrass:
		return GlyphGrass
	case farm.TileDirt:
		switch {
		case t.Watered:
			return GlyphWatered
		case t.Tilled:
			return GlyphTilled
		default:
			return GlyphDirt
		}
	case farm.TileWater:
		return GlyphWater
	case farm.TileHouse:
		return GlyphHouse
	case farm.TileShop:
		return GlyphShop
	case farm.TileMayor:
		return GlyphMayor
	default:
		return '?'
	}
}

// CropGlyph: growing crops show their catalog glyph, ripe ones the upper-case
// form of it.
func CropGlyph(c farm.Crop, crops farm.Catalog) rune {
	switch c.State {
	case farm.StateSeed:
		return GlyphSeed
	case farm.StateSprout:
		return GlyphSprout
	case farm.StateGrowing:
		return cropRune(c.Kind, crops, false)
	case farm.StateRipe:
		return cropRune(c.Kind, crops, true)
	case farm.StateDead:
		return GlyphDead
	default:
		return '?'
	}
}

func cropRune(kind farm.CropKind, crops farm.Catalog, ripe bool) rune {
	glyph := "?"
	if spec, ok := crops[kind]; ok && spec.Glyph != "" {
		glyph = spec.Glyph
	}
	if ripe {
		glyph = strings.ToUpper(glyph)
	}
	return []rune(glyph)[0]
}

// HUD is the one-line header: day, clock, weather, money, energy and facing.
func HUD(p player.Player, s farm.GameState) string {
	return fmt.Sprintf("Day %d  %02d:%02d  %s  %dG  Energy %d/%d (%d%%)  Facing %s",
		s.Day,
		s.Time/100, s.Time%100,
		weatherLabel(s.Weather),
		p.Money,
		p.Energy, p.MaxEnergy,
		stats.EnergyPercent(p.Energy, p.MaxEnergy),
		strings.ToLower(string(p.Facing)),
	)
}

func weatherLabel(w farm.Weather) string {
	switch w {
	case farm.WeatherRainy:
		return "Rainy"
	case farm.WeatherSunny:
		return "Sunny"
	default:
		return string(w)
	}
}

// InventoryBar lists the stacks, marking the selected one with brackets.
func InventoryBar(inv inventory.Inventory) string {
	items := inv.Items()
	if len(items) == 0 {
		return "(empty)"
	}

	parts := make([]string, 0, len(items))
	for i, it := range items {
		label := fmt.Sprintf("%d:%s", i, it.Name)
		if !it.Infinite() {
			label += fmt.Sprintf(" x%d", it.Count)
		}
		if i == inv.SelectedIndex() {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

// Stock lists shop items with their ids and prices.
func Stock(items []inventory.Item) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "  %-12s %-14s %4dG\n", it.ID, it.Name, it.BuyPrice)
	}
	return b.String()
}
