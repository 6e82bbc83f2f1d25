package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/sethgrid/harvest/internal/farm"
	"github.com/sethgrid/harvest/internal/inventory"
)

var ErrInvalidRules = errors.New("invalid rules")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks field constraints and the cross references between crops,
// inventory and shop.
func Validate(r Rules) error {
	var problems []string

	if err := getValidator().Struct(r); err != nil {
		problems = append(problems, formatValidationError(err)...)
	}

	kinds := make(map[farm.CropKind]bool, len(r.Crops))
	for _, c := range r.Crops {
		if kinds[c.Kind] {
			problems = append(problems, fmt.Sprintf("crops: duplicate kind %q", c.Kind))
		}
		kinds[c.Kind] = true
	}

	problems = append(problems, checkItems("startingInventory", r.StartingInventory, kinds)...)
	problems = append(problems, checkItems("shop", r.Shop, kinds)...)

	for _, it := range r.StartingInventory {
		if it.Count == 0 {
			problems = append(problems, fmt.Sprintf("startingInventory: %q has an empty stack", it.ID))
		}
	}
	for _, it := range r.Shop {
		if it.BuyPrice <= 0 {
			problems = append(problems, fmt.Sprintf("shop: %q needs a buy price", it.ID))
		}
	}

	if r.Grid.Width > 0 && r.Grid.Height > 0 {
		g := r.NewGrid()
		x, y := r.Player.StartX, r.Player.StartY
		switch {
		case !g.InBounds(x, y):
			problems = append(problems, fmt.Sprintf("player: start (%d,%d) is outside the %dx%d grid", x, y, r.Grid.Width, r.Grid.Height))
		case !g.Tile(x, y).Type.Passable():
			problems = append(problems, fmt.Sprintf("player: start (%d,%d) is on %s", x, y, g.Tile(x, y).Type))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRules, strings.Join(problems, "; "))
	}
	return nil
}

func checkItems(section string, items []inventory.Item, kinds map[farm.CropKind]bool) []string {
	var problems []string
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate item id %q", section, it.ID))
		}
		seen[it.ID] = true
		if it.Tool == inventory.ToolSeeds && !kinds[it.Crop] {
			problems = append(problems, fmt.Sprintf("%s: %q plants unknown crop %q", section, it.ID, it.Crop))
		}
	}
	return problems
}

// formatValidationError turns validator errors into short "field: reason"
// strings without leaking Go type names.
func formatValidationError(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	var out []string
	for _, e := range validationErrors {
		field := strings.TrimPrefix(e.Namespace(), "Rules.")
		switch e.Tag() {
		case "required", "required_if":
			out = append(out, fmt.Sprintf("%s: is required", field))
		case "oneof":
			out = append(out, fmt.Sprintf("%s: must be one of %s", field, e.Param()))
		case "min":
			out = append(out, fmt.Sprintf("%s: needs at least %s entries", field, e.Param()))
		case "len":
			out = append(out, fmt.Sprintf("%s: must be exactly %s character", field, e.Param()))
		case "gte", "gt", "lte":
			out = append(out, fmt.Sprintf("%s: must be %s %s", field, e.Tag(), e.Param()))
		default:
			out = append(out, fmt.Sprintf("%s: invalid value", field))
		}
	}
	sort.Strings(out)
	return out
}
