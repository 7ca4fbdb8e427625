package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/verdante/menucore/internal/menu"
)

func sampleItem(category string) menu.MenuItem {
	return menu.MenuItem{
		Name:      "Burrata",
		BasePrice: decimal.NewFromInt(14),
		Category:  category,
		Sizes: []menu.SizeOption{
			{ID: "s1", Label: "Regular", PriceModifier: decimal.Zero},
		},
	}
}

func TestCreateItem_AssignsID(t *testing.T) {
	c := NewCatalog("Starters")

	created, err := c.CreateItem(sampleItem("Starters"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("id must be assigned")
	}

	got, err := c.GetItem(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Burrata" {
		t.Errorf("name: got %q", got.Name)
	}
}

func TestCreateItem_InvalidStructure(t *testing.T) {
	c := NewCatalog("Starters")
	item := sampleItem("Starters")
	item.Sizes = nil

	if _, err := c.CreateItem(item); !errors.Is(err, menu.ErrNoSizes) {
		t.Fatalf("expected ErrNoSizes, got: %v", err)
	}
}

func TestCreateItem_UnknownCategory(t *testing.T) {
	c := NewCatalog("Starters")

	if _, err := c.CreateItem(sampleItem("Desserts")); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got: %v", err)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	c := NewCatalog("Starters")
	item := sampleItem("Starters")
	item.ID = uuid.New()

	if _, err := c.UpdateItem(item); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestUpdateItem_ReplacesWholesale(t *testing.T) {
	c := NewCatalog("Starters")
	created, err := c.CreateItem(sampleItem("Starters"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.BasePrice = decimal.NewFromInt(16)
	f := false
	created.IsAvailable = &f
	if _, err := c.UpdateItem(created); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := c.GetItem(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.BasePrice.Equal(decimal.NewFromInt(16)) {
		t.Errorf("base price: got %s", got.BasePrice)
	}
	if got.Available() {
		t.Error("availability toggle not persisted")
	}
}

func TestDeleteItem(t *testing.T) {
	c := NewCatalog("Starters")
	created, _ := c.CreateItem(sampleItem("Starters"))

	if err := c.DeleteItem(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := c.GetItem(created.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got: %v", err)
	}
	if err := c.DeleteItem(created.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("double delete: expected ErrItemNotFound, got: %v", err)
	}
}

func TestListItems_InsertionOrder(t *testing.T) {
	c := NewCatalog("Starters", "Mains")

	first := sampleItem("Starters")
	second := sampleItem("Mains")
	second.Name = "Ribeye"

	a, _ := c.CreateItem(first)
	b, _ := c.CreateItem(second)

	items := c.ListItems()
	if len(items) != 2 {
		t.Fatalf("len: got %d, want 2", len(items))
	}
	if items[0].ID != a.ID || items[1].ID != b.ID {
		t.Error("items not in insertion order")
	}

	mains := c.ListByCategory("Mains")
	if len(mains) != 1 || mains[0].Name != "Ribeye" {
		t.Errorf("category filter: %v", mains)
	}
}

func TestGetItem_ReturnsIsolatedCopy(t *testing.T) {
	c := NewCatalog("Starters")
	created, _ := c.CreateItem(sampleItem("Starters"))

	got, _ := c.GetItem(created.ID)
	got.Sizes[0].PriceModifier = decimal.NewFromInt(99)
	got.Name = "Hacked"

	again, _ := c.GetItem(created.ID)
	if again.Name != "Burrata" || !again.Sizes[0].PriceModifier.Equal(decimal.Zero) {
		t.Error("mutating a returned item leaked into the store")
	}
}

// =====================
// Categories
// =====================

func TestAddCategory_AppendOnly(t *testing.T) {
	c := NewCatalog("Starters")

	if err := c.AddCategory("Desserts"); err != nil {
		t.Fatalf("add: %v", err)
	}
	got := c.Categories()
	if len(got) != 2 || got[0] != "Starters" || got[1] != "Desserts" {
		t.Fatalf("categories: %v", got)
	}
}

// Duplicates are deliberately not rejected; see the AddCategory doc.
func TestAddCategory_DuplicatesAllowed(t *testing.T) {
	c := NewCatalog("Starters")

	if err := c.AddCategory("Starters"); err != nil {
		t.Fatalf("duplicate add: %v", err)
	}
	if got := c.Categories(); len(got) != 2 {
		t.Fatalf("categories: %v", got)
	}
}

func TestAddCategory_EmptyRejected(t *testing.T) {
	c := NewCatalog()
	if err := c.AddCategory("   "); !errors.Is(err, ErrCategoryRequired) {
		t.Fatalf("expected ErrCategoryRequired, got: %v", err)
	}
}

// =====================
// Settings
// =====================

func TestSettings_GetSet(t *testing.T) {
	s := NewSettings(RestaurantInfo{Name: "Verdante"})

	if got := s.Info(); got.Name != "Verdante" || got.Logo != nil {
		t.Fatalf("initial info: %+v", got)
	}

	logo := "https://example.com/logo.svg"
	s.SetInfo(RestaurantInfo{Name: "Verdante Trattoria", Logo: &logo})

	got := s.Info()
	if got.Name != "Verdante Trattoria" {
		t.Errorf("name: got %q", got.Name)
	}
	if got.Logo == nil || *got.Logo != logo {
		t.Errorf("logo: got %v", got.Logo)
	}
}
