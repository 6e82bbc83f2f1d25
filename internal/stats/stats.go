package stats

import "github.com/sethgrid/harvest/internal/farm"

// Field is a head count of the farm's soil and crops.
type Field struct {
	Tilled  int
	Watered int
	Planted int
	Thirsty int // planted and not yet watered today
	Ripe    int
	Dead    int
	Value   int // sale value of everything ripe
}

func Survey(g farm.Grid, crops farm.Catalog) Field {
	var f Field
	g.Each(func(t farm.Tile) {
		if t.Type != farm.TileDirt {
			return
		}
		if t.Tilled {
			f.Tilled++
		}
		if t.Watered {
			f.Watered++
		}
		if t.Crop == nil {
			return
		}
		f.Planted++
		switch t.Crop.State {
		case farm.StateRipe:
			f.Ripe++
			if spec, ok := crops[t.Crop.Kind]; ok {
				f.Value += spec.SellPrice
			}
		case farm.StateDead:
			f.Dead++
		default:
			if !t.Watered {
				f.Thirsty++
			}
		}
	})
	return f
}

// EnergyPercent returns energy as a share of max energy, clamped to [0, 100].
func EnergyPercent(energy, maxEnergy int) int {
	if maxEnergy <= 0 {
		return 0
	}
	pct := energy * 100 / maxEnergy

	// Clamp to [0, 100]
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}
