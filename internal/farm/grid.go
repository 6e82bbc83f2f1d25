package farm

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the panic value cause for coordinate access outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Reference layout.
const (
	DefaultWidth  = 15
	DefaultHeight = 10

	HouseX = 2
	HouseY = 2
	ShopX  = 12
	ShopY  = 2
	MayorX = 7
	MayorY = 2

	// The pond covers every interior cell with x > PondMinX and y > PondMinY.
	PondMinX = 10
	PondMinY = 6
)

// Grid is an immutable W×H field of tiles stored row-major. Every mutation
// returns a new Grid; a caller holding an older Grid never observes a change.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// Generate builds the starting map: grass everywhere, the three landmarks at
// fixed coordinates and a pond in the bottom-right corner. Borders stay grass.
func Generate(width, height int) Grid {
	tiles := make([]Tile, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles = append(tiles, Tile{X: x, Y: y, Type: layoutType(x, y, width, height)})
		}
	}
	return Grid{width: width, height: height, tiles: tiles}
}

func layoutType(x, y, width, height int) TileType {
	switch {
	case x == 0 || x == width-1 || y == 0 || y == height-1:
		return TileGrass
	case x == HouseX && y == HouseY:
		return TileHouse
	case x == ShopX && y == ShopY:
		return TileShop
	case x == MayorX && y == MayorY:
		return TileMayor
	case x > PondMinX && y > PondMinY:
		return TileWater
	default:
		return TileGrass
	}
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Tile returns a copy of the tile at (x, y), crop included. It panics when
// the coordinate is outside the grid; callers are expected to check InBounds
// first.
func (g Grid) Tile(x, y int) Tile {
	return g.tiles[g.index(x, y)].detached()
}

// WithTile returns a copy of the grid where the tile at (x, y) has been passed
// through update. The tile's coordinates cannot be changed by update.
func (g Grid) WithTile(x, y int, update func(t *Tile)) Grid {
	i := g.index(x, y)
	next := g.clone()
	t := next.tiles[i].detached()
	update(&t)
	t.X, t.Y = x, y
	next.tiles[i] = t.detached()
	return next
}

// Map returns a new grid with fn applied to every tile, in row-major order.
func (g Grid) Map(fn func(t Tile) Tile) Grid {
	next := g.clone()
	for i, t := range next.tiles {
		x, y := t.X, t.Y
		t = fn(t.detached())
		t.X, t.Y = x, y
		next.tiles[i] = t.detached()
	}
	return next
}

// Each calls fn for every tile in row-major order.
func (g Grid) Each(fn func(t Tile)) {
	for _, t := range g.tiles {
		fn(t.detached())
	}
}

func (g Grid) clone() Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return Grid{width: g.width, height: g.height, tiles: tiles}
}
