package farm

import (
	"errors"
	"testing"
)

func TestGenerateLayout(t *testing.T) {
	g := Generate(DefaultWidth, DefaultHeight)

	if g.Width() != DefaultWidth || g.Height() != DefaultHeight {
		t.Fatalf("Expected %dx%d grid, got %dx%d", DefaultWidth, DefaultHeight, g.Width(), g.Height())
	}

	tests := []struct {
		name string
		x, y int
		want TileType
	}{
		{"top-left border", 0, 0, TileGrass},
		{"bottom-right border", 14, 9, TileGrass},
		{"house", HouseX, HouseY, TileHouse},
		{"shop", ShopX, ShopY, TileShop},
		{"mayor", MayorX, MayorY, TileMayor},
		{"pond corner", 11, 7, TileWater},
		{"pond inner", 13, 8, TileWater},
		{"next to pond", 10, 7, TileGrass},
		{"above pond", 11, 6, TileGrass},
		{"player start", 7, 5, TileGrass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := g.Tile(tt.x, tt.y)
			if tile.Type != tt.want {
				t.Errorf("Expected %s at (%d,%d), got %s", tt.want, tt.x, tt.y, tile.Type)
			}
			if tile.X != tt.x || tile.Y != tt.y {
				t.Errorf("Expected coordinates (%d,%d), got (%d,%d)", tt.x, tt.y, tile.X, tile.Y)
			}
			if tile.Tilled || tile.Watered || tile.Crop != nil {
				t.Errorf("Expected fresh tile, got %+v", tile)
			}
		})
	}
}

func TestGenerateEveryCellHasOneTile(t *testing.T) {
	g := Generate(6, 4)
	count := 0
	g.Each(func(tile Tile) {
		if got := g.Tile(tile.X, tile.Y); got != tile {
			t.Errorf("Each and Tile disagree at (%d,%d): %+v vs %+v", tile.X, tile.Y, tile, got)
		}
		count++
	})
	if count != 24 {
		t.Errorf("Expected 24 tiles, got %d", count)
	}
}

func TestTileOutOfBoundsPanics(t *testing.T) {
	g := Generate(DefaultWidth, DefaultHeight)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {DefaultWidth, 0}, {0, DefaultHeight}} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Expected panic for %v", c)
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("Expected ErrOutOfBounds panic for %v, got %v", c, r)
				}
			}()
			g.Tile(c[0], c[1])
		}()
	}
}

func TestWithTileDoesNotMutateOriginal(t *testing.T) {
	before := Generate(DefaultWidth, DefaultHeight)

	after := before.WithTile(3, 4, func(tile *Tile) {
		tile.Type = TileDirt
		tile.Tilled = true
		tile.X = 99
	})

	if old := before.Tile(3, 4); old.Type != TileGrass || old.Tilled {
		t.Errorf("Original grid changed: %+v", old)
	}

	got := after.Tile(3, 4)
	if got.Type != TileDirt || !got.Tilled {
		t.Errorf("Expected tilled dirt, got %+v", got)
	}
	if got.X != 3 {
		t.Errorf("Coordinates must be fixed, got x=%d", got.X)
	}

	// Every other tile is untouched.
	before.Each(func(tile Tile) {
		if tile.X == 3 && tile.Y == 4 {
			return
		}
		if other := after.Tile(tile.X, tile.Y); other != tile {
			t.Errorf("Tile (%d,%d) changed: %+v", tile.X, tile.Y, other)
		}
	})
}

func TestMapReturnsNewGrid(t *testing.T) {
	before := Generate(4, 4).WithTile(1, 1, func(tile *Tile) {
		tile.Type = TileDirt
		tile.Tilled = true
		tile.Watered = true
	})

	after := before.Map(func(tile Tile) Tile {
		tile.Watered = false
		return tile
	})

	if !before.Tile(1, 1).Watered {
		t.Error("Original grid was dried")
	}
	if after.Tile(1, 1).Watered {
		t.Error("Expected mapped grid to be dry")
	}
}

func TestCropWritesDoNotReachTheGrid(t *testing.T) {
	seed := NewCrop(CropTurnip)
	g := Generate(4, 4).WithTile(1, 1, func(tile *Tile) {
		tile.Type = TileDirt
		tile.Tilled = true
		tile.Crop = &seed
	})

	// The pointer handed to WithTile is not kept.
	seed.State = StateRipe
	if got := g.Tile(1, 1).Crop.State; got != StateSeed {
		t.Errorf("WithTile kept the caller's crop: state %s", got)
	}

	// Nor is the one handed out by Tile.
	g.Tile(1, 1).Crop.State = StateRipe
	if got := g.Tile(1, 1).Crop.State; got != StateSeed {
		t.Errorf("Tile shares its crop: state %s", got)
	}

	// Nor the ones passed to Each and Map callbacks.
	g.Each(func(tile Tile) {
		if tile.Crop != nil {
			tile.Crop.DaysWatered = 9
		}
	})
	g.Map(func(tile Tile) Tile {
		if tile.Crop != nil {
			tile.Crop.DaysPlanted = 9
		}
		return tile
	})
	if got := *g.Tile(1, 1).Crop; got != seedCrop() {
		t.Errorf("Callbacks changed the grid's crop: %+v", got)
	}

	// An update that edits the crop in place leaves older grids alone.
	next := g.WithTile(1, 1, func(tile *Tile) { tile.Crop.State = StateSprout })
	if g.Tile(1, 1).Crop.State != StateSeed || next.Tile(1, 1).Crop.State != StateSprout {
		t.Errorf("Expected seed in old grid and sprout in new, got %s and %s",
			g.Tile(1, 1).Crop.State, next.Tile(1, 1).Crop.State)
	}
}

func seedCrop() Crop { return NewCrop(CropTurnip) }

func TestPassable(t *testing.T) {
	for _, tt := range []TileType{TileGrass, TileDirt} {
		if !tt.Passable() {
			t.Errorf("Expected %s to be passable", tt)
		}
	}
	for _, tt := range []TileType{TileWater, TileHouse, TileShop, TileMayor} {
		if tt.Passable() {
			t.Errorf("Expected %s to block movement", tt)
		}
	}
}
