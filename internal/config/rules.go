package config

import (
	"github.com/sethgrid/harvest/internal/action"
	"github.com/sethgrid/harvest/internal/daycycle"
	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/inventory"
	"github.com/sethgrid/harvest/internal/player"
	"github.com/sethgrid/harvest/internal/shop"
)

const (
	RulesVersion     = "1.0"
	DefaultStartX    = 7
	DefaultStartY    = 5
	DefaultMoney     = 200
	DefaultMaxEnergy = 100
)

// Rules is the game-balance file.
type Rules struct {
	Version      string      `toml:"version" yaml:"version"`
	Grid         GridRules   `toml:"grid" yaml:"grid"`
	Player       PlayerRules `toml:"player" yaml:"player"`
	ActionCost   int         `toml:"actionCost" yaml:"actionCost" validate:"gte=0"`
	RainChance   float64     `toml:"rainChance" yaml:"rainChance" validate:"gte=0,lte=1"`
	DayStartTime int         `toml:"dayStartTime" yaml:"dayStartTime" validate:"gte=0,lte=2400"`

	Crops             []CropRule       `toml:"crops" yaml:"crops" validate:"min=1,dive"`
	StartingInventory []inventory.Item `toml:"startingInventory" yaml:"startingInventory" validate:"dive"`
	Shop              []inventory.Item `toml:"shop" yaml:"shop" validate:"dive"`
}

type GridRules struct {
	Width  int `toml:"width" yaml:"width" validate:"gte=3"`
	Height int `toml:"height" yaml:"height" validate:"gte=3"`
}

type PlayerRules struct {
	StartX    int           `toml:"startX" yaml:"startX" validate:"gte=0"`
	StartY    int           `toml:"startY" yaml:"startY" validate:"gte=0"`
	Facing    player.Facing `toml:"facing" yaml:"facing" validate:"oneof=UP DOWN LEFT RIGHT"`
	Money     int           `toml:"money" yaml:"money" validate:"gte=0"`
	MaxEnergy int           `toml:"maxEnergy" yaml:"maxEnergy" validate:"gt=0"`
}

type CropRule struct {
	Kind       farm.CropKind `toml:"kind" yaml:"kind" validate:"required"`
	Name       string        `toml:"name" yaml:"name" validate:"required"`
	GrowthDays int           `toml:"growthDays" yaml:"growthDays" validate:"gte=1"`
	SellPrice  int           `toml:"sellPrice" yaml:"sellPrice" validate:"gte=0"`
	Glyph      string        `toml:"glyph" yaml:"glyph" validate:"len=1"`
}

// Default returns the reference balance.
func Default() Rules {
	return Rules{
		Version: RulesVersion,
		Grid:    GridRules{Width: farm.DefaultWidth, Height: farm.DefaultHeight},
		Player: PlayerRules{
			StartX:    DefaultStartX,
			StartY:    DefaultStartY,
			Facing:    player.FacingDown,
			Money:     DefaultMoney,
			MaxEnergy: DefaultMaxEnergy,
		},
		ActionCost:   action.DefaultActionCost,
		RainChance:   daycycle.DefaultRainChance,
		DayStartTime: farm.DayStartTime,
		Crops: []CropRule{
			{Kind: farm.CropTurnip, Name: "Turnip", GrowthDays: 3, SellPrice: 60, Glyph: "t"},
			{Kind: farm.CropCorn, Name: "Corn", GrowthDays: 5, SellPrice: 150, Glyph: "c"},
		},
		StartingInventory: []inventory.Item{
			{ID: "hoe", Name: "Hoe", Tool: inventory.ToolHoe, Count: inventory.Infinite, Icon: "H"},
			{ID: "water", Name: "Water Can", Tool: inventory.ToolWateringCan, Count: inventory.Infinite, Icon: "W"},
			{ID: "scythe", Name: "Scythe", Tool: inventory.ToolScythe, Count: inventory.Infinite, Icon: "S"},
			{ID: "seed_turnip", Name: "Turnip Seeds", Tool: inventory.ToolSeeds, Crop: farm.CropTurnip, Count: 5, Icon: "t", BuyPrice: 20},
		},
		Shop: []inventory.Item{
			{ID: "seed_turnip", Name: "Turnip Seeds", Tool: inventory.ToolSeeds, Crop: farm.CropTurnip, Count: 1, Icon: "t", BuyPrice: 20},
			{ID: "seed_corn", Name: "Corn Seeds", Tool: inventory.ToolSeeds, Crop: farm.CropCorn, Count: 1, Icon: "c", BuyPrice: 50},
		},
	}
}

// Catalog builds the crop table.
func (r Rules) Catalog() farm.Catalog {
	specs := make([]farm.CropSpec, 0, len(r.Crops))
	for _, c := range r.Crops {
		specs = append(specs, farm.CropSpec{
			Kind:       c.Kind,
			Name:       c.Name,
			GrowthDays: c.GrowthDays,
			SellPrice:  c.SellPrice,
			Glyph:      c.Glyph,
		})
	}
	return farm.NewCatalog(specs...)
}

func (r Rules) Stock() shop.Stock {
	stock := make(shop.Stock, len(r.Shop))
	copy(stock, r.Shop)
	return stock
}

// NewPlayer returns the player as they wake on day one.
func (r Rules) NewPlayer() player.Player {
	return player.Player{
		X:         r.Player.StartX,
		Y:         r.Player.StartY,
		Facing:    r.Player.Facing,
		Money:     r.Player.Money,
		Energy:    r.Player.MaxEnergy,
		MaxEnergy: r.Player.MaxEnergy,
		Inventory: inventory.New(r.StartingInventory...),
	}
}

func (r Rules) NewGrid() farm.Grid {
	return farm.Generate(r.Grid.Width, r.Grid.Height)
}

func (r Rules) NewGameState() farm.GameState {
	return farm.GameState{Day: 1, Time: r.DayStartTime, Weather: farm.WeatherSunny}
}

// withoutLists returns the defaults with list sections cleared, ready to be
// decoded over. Scalars the file omits keep their default.
func withoutLists() Rules {
	r := Default()
	r.Crops, r.StartingInventory, r.Shop = nil, nil, nil
	return r
}

// fillLists restores default list sections a partial file left out.
func (r *Rules) fillLists() {
	d := Default()
	if r.Crops == nil {
		r.Crops = d.Crops
	}
	if r.StartingInventory == nil {
		r.StartingInventory = d.StartingInventory
	}
	if r.Shop == nil {
		r.Shop = d.Shop
	}
}
