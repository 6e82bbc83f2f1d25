package shop

import (
	"errors"
	"fmt"

	"github.com/sethgrid/harvest/internal/inventory"
	"github.com/sethgrid/harvest/internal/player"
)

// Error message string constants
const (
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUnknownItem       = "item not sold here"
)

var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrUnknownItem       = errors.New(ErrMsgUnknownItem)
)

// Buy charges the item's buy price and adds one unit to the inventory. When
// the player cannot afford it the player is returned unchanged.
func Buy(p player.Player, item inventory.Item) (player.Player, error) {
	if p.Money < item.BuyPrice {
		return p, fmt.Errorf("%w: %s costs %dG, have %dG", ErrInsufficientFunds, item.Name, item.BuyPrice, p.Money)
	}
	p.Money -= item.BuyPrice
	p.Inventory = p.Inventory.Add(item)
	return p, nil
}

// Stock is the shop's ordered list of items for sale.
type Stock []inventory.Item

// Lookup finds an item by id.
func (s Stock) Lookup(id string) (inventory.Item, error) {
	for _, it := range s {
		if it.ID == id {
			return it, nil
		}
	}
	return inventory.Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
}

// Cheapest returns the lowest buy price in stock, or 0 when empty.
func (s Stock) Cheapest() int {
	cheapest := 0
	for i, it := range s {
		if i == 0 || it.BuyPrice < cheapest {
			cheapest = it.BuyPrice
		}
	}
	return cheapest
}
