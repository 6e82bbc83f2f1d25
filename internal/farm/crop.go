package farm

import "fmt"

type CropKind string

const (
	CropTurnip CropKind = "TURNIP"
	CropCorn   CropKind = "CORN"
)

// GrowthState is the ordered maturity level of a crop.
type GrowthState int

const (
	StateSeed GrowthState = iota
	StateSprout
	StateGrowing
	StateRipe
	// StateDead exists for the scythe; no rule currently produces it.
	StateDead
)

func (s GrowthState) String() string {
	switch s {
	case StateSeed:
		return "seed"
	case StateSprout:
		return "sprout"
	case StateGrowing:
		return "growing"
	case StateRipe:
		return "ripe"
	case StateDead:
		return "dead"
	default:
		return fmt.Sprintf("GrowthState(%d)", int(s))
	}
}

type Crop struct {
	Kind        CropKind    `toml:"kind" yaml:"kind"`
	State       GrowthState `toml:"state" yaml:"state"`
	DaysPlanted int         `toml:"daysPlanted" yaml:"daysPlanted"`
	DaysWatered int         `toml:"daysWatered" yaml:"daysWatered"`
}

// NewCrop returns a freshly planted seed.
func NewCrop(kind CropKind) Crop {
	return Crop{Kind: kind, State: StateSeed}
}

func (c Crop) Ripe() bool { return c.State == StateRipe }
func (c Crop) Dead() bool { return c.State == StateDead }

// CropSpec holds the balance data for one kind of crop.
type CropSpec struct {
	Kind       CropKind
	Name       string
	GrowthDays int
	SellPrice  int
	Glyph      string
}

// Catalog maps crop kinds to their specs.
type Catalog map[CropKind]CropSpec

func NewCatalog(specs ...CropSpec) Catalog {
	c := make(Catalog, len(specs))
	for _, s := range specs {
		c[s.Kind] = s
	}
	return c
}

// Spec returns the spec for kind. An unknown kind is an internal invariant
// violation and panics.
func (c Catalog) Spec(kind CropKind) CropSpec {
	s, ok := c[kind]
	if !ok {
		panic(fmt.Sprintf("farm: no crop spec for kind %q", kind))
	}
	return s
}

// DefaultCatalog is the reference crop table.
func DefaultCatalog() Catalog {
	return NewCatalog(
		CropSpec{Kind: CropTurnip, Name: "Turnip", GrowthDays: 3, SellPrice: 60, Glyph: "t"},
		CropSpec{Kind: CropCorn, Name: "Corn", GrowthDays: 5, SellPrice: 150, Glyph: "c"},
	)
}
