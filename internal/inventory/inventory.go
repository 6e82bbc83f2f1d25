package inventory

import (
	"errors"

	"github.com/sethgrid/harvest/internal/farm"
)

// Infinite marks a non-consumable tool stack.
const Infinite = -1

var ErrInvalidIndex = errors.New("inventory index out of range")

type ToolKind string

const (
	ToolHoe         ToolKind = "HOE"
	ToolWateringCan ToolKind = "WATERING_CAN"
	ToolSeeds       ToolKind = "SEEDS"
	ToolHand        ToolKind = "HAND"
	ToolScythe      ToolKind = "SCYTHE"
)

// Item is one inventory stack. Seed items name the crop they plant.
type Item struct {
	ID        string        `toml:"id" yaml:"id" validate:"required"`
	Name      string        `toml:"name" yaml:"name" validate:"required"`
	Tool      ToolKind      `toml:"tool" yaml:"tool" validate:"required,oneof=HOE WATERING_CAN SEEDS HAND SCYTHE"`
	Crop      farm.CropKind `toml:"crop,omitempty" yaml:"crop,omitempty" validate:"required_if=Tool SEEDS"`
	Count     int           `toml:"count" yaml:"count" validate:"gte=-1"`
	Icon      string        `toml:"icon" yaml:"icon"`
	BuyPrice  int           `toml:"buyPrice,omitempty" yaml:"buyPrice,omitempty" validate:"gte=0"`
	SellPrice int           `toml:"sellPrice,omitempty" yaml:"sellPrice,omitempty" validate:"gte=0"`
}

func (i Item) Infinite() bool { return i.Count == Infinite }

// Inventory is an ordered list of stacks with unique ids and a selection
// cursor. Methods never modify the receiver; they return the next inventory.
type Inventory struct {
	items    []Item
	selected int
}

func New(items ...Item) Inventory {
	return Inventory{items: cloneItems(items)}
}

func (inv Inventory) Len() int           { return len(inv.items) }
func (inv Inventory) SelectedIndex() int { return inv.selected }

// Items returns a copy of the stacks in order.
func (inv Inventory) Items() []Item {
	return cloneItems(inv.items)
}

// Selected returns the currently selected stack, if any.
func (inv Inventory) Selected() (Item, bool) {
	if inv.selected < 0 || inv.selected >= len(inv.items) {
		return Item{}, false
	}
	return inv.items[inv.selected], true
}

// Find returns the index of the stack with id, or -1.
func (inv Inventory) Find(id string) int {
	for i, it := range inv.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Select moves the cursor to index. Out-of-range indexes leave the inventory
// as it was and report ErrInvalidIndex.
func (inv Inventory) Select(index int) (Inventory, error) {
	if index < 0 || index >= len(inv.items) {
		return inv, ErrInvalidIndex
	}
	inv.selected = index
	return inv, nil
}

// Cycle advances the cursor by one, wrapping around.
func (inv Inventory) Cycle() Inventory {
	if len(inv.items) == 0 {
		return inv
	}
	inv.selected = (inv.selected + 1) % len(inv.items)
	return inv
}

// ConsumeOne removes a single unit from the stack at index. A stack that
// reaches zero is dropped and the cursor falls back to max(0, index-1).
// Infinite stacks are never consumed.
func (inv Inventory) ConsumeOne(index int) (Inventory, error) {
	if index < 0 || index >= len(inv.items) {
		return inv, ErrInvalidIndex
	}
	if inv.items[index].Count <= 0 {
		return inv, nil
	}

	items := cloneItems(inv.items)
	items[index].Count--
	if items[index].Count > 0 {
		return Inventory{items: items, selected: inv.selected}, nil
	}

	items = append(items[:index], items[index+1:]...)
	return Inventory{items: items, selected: max(0, index-1)}, nil
}

// Add puts one unit of item into the inventory, stacking on an existing entry
// with the same id or appending a new entry with count 1.
func (inv Inventory) Add(item Item) Inventory {
	items := cloneItems(inv.items)
	if i := inv.Find(item.ID); i >= 0 {
		if !items[i].Infinite() {
			items[i].Count++
		}
		return Inventory{items: items, selected: inv.selected}
	}

	item.Count = 1
	items = append(items, item)
	return Inventory{items: items, selected: inv.selected}
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
