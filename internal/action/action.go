package action

import (
	"fmt"

	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/inventory"
	"github.com/sethgrid/harvest/internal/player"
)

// DefaultActionCost is the energy charged for a successful tool use.
const DefaultActionCost = 2

// Signal tells the caller to switch presentation mode.
type Signal int

const (
	SignalNone Signal = iota
	SignalOpenShop
	SignalOpenDialogue
)

func (s Signal) String() string {
	switch s {
	case SignalOpenShop:
		return "open-shop"
	case SignalOpenDialogue:
		return "open-dialogue"
	default:
		return "none"
	}
}

// User-facing messages
const (
	MsgHouse        = "Home sweet home. Sleep to rest until tomorrow."
	MsgTooTired     = "Too tired!"
	MsgRefill       = "Watering can refilled!"
	MsgTilled       = "Tilled the soil."
	MsgWatered      = "Watered the soil."
	MsgCleared      = "Cleared the dead crop."
	msgHarvestedFmt = "Harvested %s! Sold for %dG."
	msgPlantedFmt   = "Planted %s."
)

// Result is the outcome of an interaction. Message is empty for silent no-ops.
type Result struct {
	Player  player.Player
	Grid    farm.Grid
	Message string
	Signal  Signal
}

// Move turns the player toward dir and steps if the destination is inside the
// grid and passable. The facing change is kept even when the step is blocked.
func Move(p player.Player, g farm.Grid, dir player.Facing) player.Player {
	p.Facing = dir
	dx, dy := dir.Delta()
	nx, ny := p.X+dx, p.Y+dy

	if !g.InBounds(nx, ny) {
		return p
	}
	if !g.Tile(nx, ny).Type.Passable() {
		return p
	}

	p.X, p.Y = nx, ny
	return p
}

// Resolver decides what an interact command does to the tile in front of the
// player.
type Resolver struct {
	Crops      farm.Catalog
	ActionCost int
}

func NewResolver(crops farm.Catalog, actionCost int) *Resolver {
	return &Resolver{Crops: crops, ActionCost: actionCost}
}

// Interact resolves in priority order: landmarks, harvest, then the selected
// tool. Harvesting costs no energy.
func (r *Resolver) Interact(p player.Player, g farm.Grid) Result {
	res := Result{Player: p, Grid: g}

	tx, ty := p.Target()
	if !g.InBounds(tx, ty) {
		return res
	}
	tile := g.Tile(tx, ty)

	switch tile.Type {
	case farm.TileShop:
		res.Signal = SignalOpenShop
		return res
	case farm.TileMayor:
		res.Signal = SignalOpenDialogue
		return res
	case farm.TileHouse:
		res.Message = MsgHouse
		return res
	}

	if tile.HasCrop() && tile.Crop.Ripe() {
		return r.harvest(res, tile)
	}

	return r.useTool(res, tile)
}

func (r *Resolver) harvest(res Result, tile farm.Tile) Result {
	spec := r.Crops.Spec(tile.Crop.Kind)
	res.Grid = res.Grid.WithTile(tile.X, tile.Y, func(t *farm.Tile) {
		t.Crop = nil
		t.Tilled = true
	})
	res.Player.Money += spec.SellPrice
	res.Message = fmt.Sprintf(msgHarvestedFmt, spec.Name, spec.SellPrice)
	return res
}

func (r *Resolver) useTool(res Result, tile farm.Tile) Result {
	item, ok := res.Player.Inventory.Selected()
	if !ok {
		return res
	}

	if res.Player.Energy < r.ActionCost {
		res.Message = MsgTooTired
		return res
	}

	switch item.Tool {
	case inventory.ToolHoe:
		return r.hoe(res, tile)
	case inventory.ToolWateringCan:
		return r.water(res, tile)
	case inventory.ToolSeeds:
		return r.plant(res, tile, item)
	case inventory.ToolScythe:
		return r.scythe(res, tile)
	default:
		return res
	}
}

func (r *Resolver) hoe(res Result, tile farm.Tile) Result {
	switch {
	case tile.Type == farm.TileGrass:
		res.Grid = res.Grid.WithTile(tile.X, tile.Y, func(t *farm.Tile) {
			t.Type = farm.TileDirt
			t.Tilled = true
		})
	case tile.Type == farm.TileDirt && !tile.Tilled && !tile.HasCrop():
		res.Grid = res.Grid.WithTile(tile.X, tile.Y, func(t *farm.Tile) {
			t.Tilled = true
		})
	default:
		return res
	}
	res.Player.Energy -= r.ActionCost
	res.Message = MsgTilled
	return res
}

func (r *Resolver) water(res Result, tile farm.Tile) Result {
	switch {
	case tile.Type == farm.TileWater:
		// The can never runs dry, so refilling changes nothing.
		res.Message = MsgRefill
		return res
	case tile.Type == farm.TileDirt && tile.Tilled:
		res.Grid = res.Grid.WithTile(tile.X, tile.Y, func(t *farm.Tile) {
			t.Watered = true
		})
		res.Player.Energy -= r.ActionCost
		res.Message = MsgWatered
		return res
	default:
		return res
	}
}

func (r *Resolver) plant(res Result, tile farm.Tile, seed inventory.Item) Result {
	if !tile.Plantable() {
		return res
	}
	spec, ok := r.Crops[seed.Crop]
	if !ok {
		return res
	}

	inv, err := res.Player.Inventory.ConsumeOne(res.Player.Inventory.SelectedIndex())
	if err != nil {
		return res
	}

	crop := farm.NewCrop(seed.Crop)
	res.Grid = res.Grid.WithTile(tile.X, tile.Y, func(t *farm.Tile) {
		t.Crop = &crop
	})
	res.Player.Inventory = inv
	res.Player.Energy -= r.ActionCost
	res.Message = fmt.Sprintf(msgPlantedFmt, spec.Name)
	return res
}

func (r *Resolver) scythe(res Result, tile farm.Tile) Result {
	if !tile.HasCrop() || !tile.Crop.Dead() {
		return res
	}
	res.Grid = res.Grid.WithTile(tile.X, tile.Y, func(t *farm.Tile) {
		t.Crop = nil
	})
	res.Player.Energy -= r.ActionCost
	res.Message = MsgCleared
	return res
}
