// Package cart is the pricing engine: it turns a catalog item plus a
// customer's selections into an immutable CartItem snapshot, and owns the
// deterministic price derivation
//
//	unit  = base_price + size modifier + sum of selected add-on prices
//	total = unit * quantity
//
// Snapshots copy the menu item by value, so later catalog edits never
// change a cart entry that was already built.
package cart

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/verdante/menucore/internal/menu"
)

// Errors returned by the pricing engine.
var (
	ErrItemUnavailable  = errors.New("item is not available")
	ErrInvalidQuantity  = errors.New("quantity must be >= 1")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartItem is a frozen snapshot of a configured menu item taken at
// add-to-cart time. CartItemID is distinct from the menu item's ID so the
// same dish can appear multiple times with different configurations.
type CartItem struct {
	menu.MenuItem

	CartItemID     uuid.UUID       `json:"cart_item_id"`
	SelectedSize   menu.SizeOption `json:"selected_size"`
	SelectedAddOns []menu.AddOn    `json:"selected_add_ons"`
	Quantity       int32           `json:"quantity"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

// SelectSize resolves a size id against the item's size list.
func SelectSize(item *menu.MenuItem, sizeID string) (menu.SizeOption, error) {
	return item.SizeByID(sizeID)
}

// ToggleAddOn returns a new selection with the add-on added if absent and
// removed if present. Applying it twice with the same add-on returns a
// selection equal to the original; the input slice is never modified.
func ToggleAddOn(selected []menu.AddOn, addOn menu.AddOn) []menu.AddOn {
	out := make([]menu.AddOn, 0, len(selected)+1)
	found := false
	for _, a := range selected {
		if a.ID == addOn.ID {
			found = true
			continue
		}
		out = append(out, a)
	}
	if !found {
		out = append(out, addOn)
	}
	return out
}

// UnitPrice derives the price of a single unit from the chosen size and
// add-ons. Pure function of its inputs; never cached.
func UnitPrice(item *menu.MenuItem, size menu.SizeOption, addOns []menu.AddOn) decimal.Decimal {
	price := item.BasePrice.Add(size.PriceModifier)
	for _, a := range addOns {
		price = price.Add(a.Price)
	}
	return price
}

// Build creates a CartItem snapshot for the given configuration. It fails
// without side effects when the item is unavailable or the quantity is
// below 1. Duplicate add-on selections collapse to one.
func Build(item *menu.MenuItem, size menu.SizeOption, addOns []menu.AddOn, quantity int32) (CartItem, error) {
	if !item.Available() {
		return CartItem{}, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
	}
	if quantity < 1 {
		return CartItem{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	selected := make([]menu.AddOn, 0, len(addOns))
	seen := make(map[string]bool, len(addOns))
	for _, a := range addOns {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		selected = append(selected, a)
	}

	unit := UnitPrice(item, size, selected)

	return CartItem{
		MenuItem:       item.Clone(),
		CartItemID:     uuid.New(),
		SelectedSize:   size,
		SelectedAddOns: selected,
		Quantity:       quantity,
		TotalPrice:     unit.Mul(decimal.NewFromInt32(quantity)),
	}, nil
}

// unitPrice recomputes the snapshot's own unit price. Uses only fields
// frozen into the snapshot, so catalog edits cannot leak in.
func (c *CartItem) unitPrice() decimal.Decimal {
	price := c.BasePrice.Add(c.SelectedSize.PriceModifier)
	for _, a := range c.SelectedAddOns {
		price = price.Add(a.Price)
	}
	return price
}

// Cart holds a single session's cart entries. It is plain sequential state
// owned by one caller, like the source it models; it is not goroutine-safe.
type Cart struct {
	items []CartItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add appends a snapshot to the cart.
func (c *Cart) Add(item CartItem) {
	c.items = append(c.items, item)
}

// Remove drops the entry with the given cart item id.
func (c *Cart) Remove(cartItemID uuid.UUID) error {
	for i, item := range c.items {
		if item.CartItemID == cartItemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrCartItemNotFound, cartItemID)
}

// IncrementQuantity raises an entry's quantity by one and recomputes its
// total from the snapshot's frozen configuration.
func (c *Cart) IncrementQuantity(cartItemID uuid.UUID) error {
	return c.adjustQuantity(cartItemID, 1)
}

// DecrementQuantity lowers an entry's quantity by one. Quantity never drops
// below 1: decrementing at 1 is a no-op, not an error.
func (c *Cart) DecrementQuantity(cartItemID uuid.UUID) error {
	return c.adjustQuantity(cartItemID, -1)
}

func (c *Cart) adjustQuantity(cartItemID uuid.UUID, delta int32) error {
	for i := range c.items {
		if c.items[i].CartItemID != cartItemID {
			continue
		}
		qty := c.items[i].Quantity + delta
		if qty < 1 {
			qty = 1
		}
		c.items[i].Quantity = qty
		c.items[i].TotalPrice = c.items[i].unitPrice().Mul(decimal.NewFromInt32(qty))
		return nil
	}
	return fmt.Errorf("%w: %s", ErrCartItemNotFound, cartItemID)
}

// Items returns a copy of the cart entries in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len reports the number of entries (not the summed quantity).
func (c *Cart) Len() int {
	return len(c.items)
}

// Subtotal sums the entries' total prices.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.TotalPrice)
	}
	return sum
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}
