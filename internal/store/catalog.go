// Package store provides the in-memory stores backing the catalog, order,
// and settings surfaces. All state lives in process memory; stores guard it
// with RW mutexes and hand out deep copies so callers can never mutate
// store state through held references.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/verdante/menucore/internal/menu"
)

var (
	ErrItemNotFound     = errors.New("menu item not found")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrCategoryRequired = errors.New("category name is required")
)

// Catalog holds the menu items and the category list.
type Catalog struct {
	mu         sync.RWMutex
	items      map[uuid.UUID]menu.MenuItem
	insertions []uuid.UUID
	categories []string
}

// NewCatalog creates an empty catalog with the given starting categories.
func NewCatalog(categories ...string) *Catalog {
	return &Catalog{
		items:      make(map[uuid.UUID]menu.MenuItem),
		categories: append([]string(nil), categories...),
	}
}

// CreateItem validates and stores a new menu item, assigning it a fresh id
// unless the caller provided one. The item's category must already exist.
func (c *Catalog) CreateItem(item menu.MenuItem) (menu.MenuItem, error) {
	if err := item.Validate(); err != nil {
		return menu.MenuItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasCategory(item.Category) {
		return menu.MenuItem{}, fmt.Errorf("%w: %q", ErrUnknownCategory, item.Category)
	}

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	stored := item.Clone()
	c.items[stored.ID] = stored
	c.insertions = append(c.insertions, stored.ID)
	return stored.Clone(), nil
}

// UpdateItem replaces an existing item wholesale. Existing cart snapshots
// and placed orders are unaffected; they hold their own copies.
func (c *Catalog) UpdateItem(item menu.MenuItem) (menu.MenuItem, error) {
	if err := item.Validate(); err != nil {
		return menu.MenuItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[item.ID]; !ok {
		return menu.MenuItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, item.ID)
	}
	if !c.hasCategory(item.Category) {
		return menu.MenuItem{}, fmt.Errorf("%w: %q", ErrUnknownCategory, item.Category)
	}

	stored := item.Clone()
	c.items[stored.ID] = stored
	return stored.Clone(), nil
}

// DeleteItem removes an item from the catalog.
func (c *Catalog) DeleteItem(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	delete(c.items, id)
	for i, insID := range c.insertions {
		if insID == id {
			c.insertions = append(c.insertions[:i], c.insertions[i+1:]...)
			break
		}
	}
	return nil
}

// GetItem returns a copy of a single item.
func (c *Catalog) GetItem(id uuid.UUID) (menu.MenuItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return menu.MenuItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return item.Clone(), nil
}

// ListItems returns copies of all items in insertion order.
func (c *Catalog) ListItems() []menu.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]menu.MenuItem, 0, len(c.insertions))
	for _, id := range c.insertions {
		item := c.items[id]
		out = append(out, item.Clone())
	}
	return out
}

// ListByCategory returns copies of the items in one category, in insertion
// order.
func (c *Catalog) ListByCategory(category string) []menu.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []menu.MenuItem
	for _, id := range c.insertions {
		if item := c.items[id]; item.Category == category {
			out = append(out, item.Clone())
		}
	}
	return out
}

// AddCategory appends a category to the list. The list is append-only and
// duplicates are NOT rejected; the source system behaves the same way and
// product intent is unconfirmed, so the permissiveness is kept.
func (c *Catalog) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCategoryRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories = append(c.categories, name)
	return nil
}

// Categories returns a copy of the category list in append order.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.categories...)
}

// hasCategory must be called with the lock held.
func (c *Catalog) hasCategory(name string) bool {
	for _, cat := range c.categories {
		if cat == name {
			return true
		}
	}
	return false
}
