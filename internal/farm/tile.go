package farm

type TileType string

const (
	TileGrass TileType = "GRASS"
	TileDirt  TileType = "DIRT"
	TileWater TileType = "WATER"
	TileHouse TileType = "HOUSE"
	TileShop  TileType = "SHOP"
	TileMayor TileType = "MAYOR"
)

// Passable reports whether the player may stand on a tile of this type.
func (t TileType) Passable() bool {
	switch t {
	case TileGrass, TileDirt:
		return true
	default:
		return false
	}
}

// Tile is one grid cell. Tilled/Watered/Crop are only meaningful on DIRT.
// Crop is never mutated once placed on a tile; growth replaces the pointer.
type Tile struct {
	X       int      `toml:"x" yaml:"x"`
	Y       int      `toml:"y" yaml:"y"`
	Type    TileType `toml:"type" yaml:"type"`
	Tilled  bool     `toml:"tilled" yaml:"tilled"`
	Watered bool     `toml:"watered" yaml:"watered"`
	Crop    *Crop    `toml:"crop,omitempty" yaml:"crop,omitempty"`
}

func (t Tile) HasCrop() bool {
	return t.Crop != nil
}

// Plantable reports whether a seed may be planted here.
func (t Tile) Plantable() bool {
	return t.Type == TileDirt && t.Tilled && t.Crop == nil
}

// detached returns t with its own copy of the crop, so writes through the
// returned tile never reach the grid it came from.
func (t Tile) detached() Tile {
	if t.Crop != nil {
		c := *t.Crop
		t.Crop = &c
	}
	return t
}
