// Package menu defines the catalog model: menu items, their configurable
// variants (sizes, add-ons), and availability. It carries no behavior beyond
// structural validation and read-only accessors; pricing lives in the cart
// engine and category membership is enforced by the catalog store.
package menu

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Errors returned by catalog model validation and lookups.
var (
	ErrNameRequired      = errors.New("name is required")
	ErrNegativeBasePrice = errors.New("base_price must not be negative")
	ErrNoSizes           = errors.New("at least one size is required")
	ErrDuplicateSizeID   = errors.New("duplicate size id")
	ErrDuplicateAddOnID  = errors.New("duplicate add-on id")
	ErrSizeNotFound      = errors.New("size not found")
	ErrAddOnNotFound     = errors.New("add-on not found")
)

// SizeOption is a selectable portion size. PriceModifier is added to the
// item's base price; zero means the size costs the base price.
type SizeOption struct {
	ID            string          `json:"id"`
	Label         string          `json:"label"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

// AddOn is an optional extra priced per selection.
type AddOn struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// NutritionInfo holds macros in grams.
type NutritionInfo struct {
	Protein int32 `json:"protein"`
	Carbs   int32 `json:"carbs"`
	Fats    int32 `json:"fats"`
}

// MenuItem is a catalog entry. Created and edited only through the catalog
// store's administrative operations; the ordering flow never mutates it.
type MenuItem struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	BasePrice       decimal.Decimal `json:"base_price"`
	Category        string          `json:"category"`
	ImageURL        string          `json:"image_url"`
	ARModelURL      string          `json:"ar_model_url,omitempty"`
	Calories        *int32          `json:"calories,omitempty"`
	PreparationTime string          `json:"preparation_time,omitempty"`

	IsBestseller  bool `json:"is_bestseller,omitempty"`
	IsChefsChoice bool `json:"is_chefs_choice,omitempty"`
	IsSpicy       bool `json:"is_spicy,omitempty"`
	IsVegetarian  bool `json:"is_vegetarian,omitempty"`
	IsGlutenFree  bool `json:"is_gluten_free,omitempty"`

	// IsAvailable is tri-state: nil and true both mean the item can be
	// ordered, only an explicit false takes it off sale. Callers must go
	// through Available(); checking the field directly collapses the
	// nil case the wrong way.
	IsAvailable *bool `json:"is_available,omitempty"`

	Sizes  []SizeOption `json:"sizes"`
	AddOns []AddOn      `json:"add_ons"`

	PairingNote string         `json:"pairing_note,omitempty"`
	Ingredients string         `json:"ingredients,omitempty"`
	Allergens   []string       `json:"allergens,omitempty"`
	Nutrition   *NutritionInfo `json:"nutrition,omitempty"`
}

// Available reports the item's effective availability: absent or true means
// available, only explicit false means unavailable.
func (m *MenuItem) Available() bool {
	return m.IsAvailable == nil || *m.IsAvailable
}

// Validate checks the item's structure. It does not check category
// membership; the catalog store owns the category set.
func (m *MenuItem) Validate() error {
	if m.Name == "" {
		return ErrNameRequired
	}
	if m.BasePrice.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeBasePrice, m.BasePrice)
	}
	if len(m.Sizes) == 0 {
		return ErrNoSizes
	}

	sizeIDs := make(map[string]bool, len(m.Sizes))
	for _, s := range m.Sizes {
		if sizeIDs[s.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateSizeID, s.ID)
		}
		sizeIDs[s.ID] = true
	}

	addOnIDs := make(map[string]bool, len(m.AddOns))
	for _, a := range m.AddOns {
		if addOnIDs[a.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateAddOnID, a.ID)
		}
		addOnIDs[a.ID] = true
	}

	return nil
}

// DefaultSize is the initial selection shown to a customer: the first size.
// Callers must only use it on a validated item (Sizes non-empty).
func (m *MenuItem) DefaultSize() SizeOption {
	return m.Sizes[0]
}

// SizeByID finds a size option within the item.
func (m *MenuItem) SizeByID(id string) (SizeOption, error) {
	for _, s := range m.Sizes {
		if s.ID == id {
			return s, nil
		}
	}
	return SizeOption{}, fmt.Errorf("%w: %q", ErrSizeNotFound, id)
}

// AddOnByID finds an add-on within the item.
func (m *MenuItem) AddOnByID(id string) (AddOn, error) {
	for _, a := range m.AddOns {
		if a.ID == id {
			return a, nil
		}
	}
	return AddOn{}, fmt.Errorf("%w: %q", ErrAddOnNotFound, id)
}

// Clone returns a deep copy of the item. Slices and nested structs are
// copied so the clone is unaffected by later edits to the original.
func (m *MenuItem) Clone() MenuItem {
	c := *m

	if m.IsAvailable != nil {
		v := *m.IsAvailable
		c.IsAvailable = &v
	}
	if m.Calories != nil {
		v := *m.Calories
		c.Calories = &v
	}
	if m.Nutrition != nil {
		v := *m.Nutrition
		c.Nutrition = &v
	}

	c.Sizes = make([]SizeOption, len(m.Sizes))
	copy(c.Sizes, m.Sizes)

	c.AddOns = make([]AddOn, len(m.AddOns))
	copy(c.AddOns, m.AddOns)

	if m.Allergens != nil {
		c.Allergens = make([]string, len(m.Allergens))
		copy(c.Allergens, m.Allergens)
	}

	return c
}
