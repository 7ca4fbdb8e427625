// Command demo walks the full ordering surface end to end: it seeds a small
// catalog, builds a configured cart, places an order, and advances it
// through the status pipeline while printing the lifecycle events.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/verdante/menucore/internal/cart"
	"github.com/verdante/menucore/internal/config"
	"github.com/verdante/menucore/internal/menu"
	"github.com/verdante/menucore/internal/notify"
	"github.com/verdante/menucore/internal/order"
	"github.com/verdante/menucore/internal/store"
)

func main() {
	// CLI flags
	customer := flag.String("customer", "", "Customer name for the demo order")
	table := flag.String("table", "", "Table number for the demo order")
	flag.Parse()

	// Fall back to environment variables
	if *customer == "" {
		*customer = os.Getenv("DEMO_CUSTOMER")
	}
	if *table == "" {
		*table = os.Getenv("DEMO_TABLE")
	}

	// Fall back to defaults
	if *customer == "" {
		*customer = "Walk-in"
	}
	if *table == "" {
		*table = "12"
	}

	cfg := config.Load()
	settings := store.NewSettings(restaurantInfo(cfg))
	log.Printf("Restaurant: %s", settings.Info().Name)

	catalog := seedCatalog()
	for _, item := range catalog.ListItems() {
		log.Printf("Menu: %-18s %-9s $%s (%d sizes, %d add-ons, available=%v)",
			item.Name, item.Category, item.BasePrice.StringFixed(2),
			len(item.Sizes), len(item.AddOns), item.Available())
	}

	hub := notify.NewHub()
	go hub.Run()
	sub := hub.Subscribe()

	orders := store.NewOrders()
	svc := order.NewService(orders, hub)

	// Pick the first available mains dish and configure it.
	var picked menu.MenuItem
	for _, item := range catalog.ListByCategory("Mains") {
		if item.Available() {
			picked = item
			break
		}
	}

	size, err := cart.SelectSize(&picked, "large")
	if err != nil {
		log.Fatalf("Select size: %v", err)
	}
	selected := cart.ToggleAddOn(nil, picked.AddOns[0])
	selected = cart.ToggleAddOn(selected, picked.AddOns[1])

	basket := cart.New()
	ci, err := cart.Build(&picked, size, selected, 3)
	if err != nil {
		log.Fatalf("Build cart item: %v", err)
	}
	basket.Add(ci)
	log.Printf("Cart: %s x%d (%s, %d add-ons) = $%s",
		ci.Name, ci.Quantity, ci.SelectedSize.Label, len(ci.SelectedAddOns),
		ci.TotalPrice.StringFixed(2))

	o, err := svc.Create(*customer, *table, basket.Items())
	if err != nil {
		log.Fatalf("Create order: %v", err)
	}
	log.Printf("Order %s placed for %s at table %s: $%s, status %s",
		o.ID, o.CustomerName, o.TableNumber, o.TotalPrice.StringFixed(2), o.Status)

	// Skipping straight to Delivered is rejected by the lifecycle engine.
	if _, err := svc.Transition(o.ID, order.StatusDelivered); err != nil {
		log.Printf("Rejected as expected: %v", err)
	}

	for _, next := range []order.Status{order.StatusPreparing, order.StatusReady, order.StatusDelivered} {
		updated, err := svc.Transition(o.ID, next)
		if err != nil {
			log.Fatalf("Transition to %s: %v", next, err)
		}
		log.Printf("Order %s -> %s", updated.ID, updated.Status)
	}

	// Give the hub time to deliver queued events, then drain them.
	time.Sleep(50 * time.Millisecond)
	hub.Unsubscribe(sub)
	for ev := range sub.Events() {
		log.Printf("Event: %s %s", ev.Type, ev.Payload)
	}
}

func restaurantInfo(cfg *config.Config) store.RestaurantInfo {
	info := store.RestaurantInfo{Name: cfg.RestaurantName}
	if cfg.RestaurantLogo != "" {
		logo := cfg.RestaurantLogo
		info.Logo = &logo
	}
	return info
}

func seedCatalog() *store.Catalog {
	catalog := store.NewCatalog("Starters", "Mains", "Desserts", "Drinks")

	unavailable := false
	items := []menu.MenuItem{
		{
			Name:         "Burrata",
			Description:  "Creamy burrata, heirloom tomatoes, basil oil",
			BasePrice:    decimal.NewFromInt(14),
			Category:     "Starters",
			ImageURL:     "https://example.com/img/burrata.jpg",
			IsVegetarian: true,
			Sizes: []menu.SizeOption{
				{ID: "regular", Label: "Regular", PriceModifier: decimal.Zero},
			},
			AddOns: []menu.AddOn{
				{ID: "prosciutto", Name: "Prosciutto", Price: decimal.NewFromInt(4)},
			},
		},
		{
			Name:            "Wagyu Burger",
			Description:     "Dry-aged wagyu, smoked cheddar, brioche",
			BasePrice:       decimal.NewFromInt(10),
			Category:        "Mains",
			ImageURL:        "https://example.com/img/burger.jpg",
			IsBestseller:    true,
			PreparationTime: "15-20 min",
			Sizes: []menu.SizeOption{
				{ID: "regular", Label: "Regular", PriceModifier: decimal.Zero},
				{ID: "large", Label: "Large", PriceModifier: decimal.NewFromInt(2)},
			},
			AddOns: []menu.AddOn{
				{ID: "bacon", Name: "Bacon", Price: decimal.NewFromInt(1)},
				{ID: "aioli", Name: "Truffle Aioli", Price: decimal.NewFromFloat(1.5)},
			},
		},
		{
			Name:        "Tiramisu",
			Description: "Espresso-soaked savoiardi, mascarpone",
			BasePrice:   decimal.NewFromInt(9),
			Category:    "Desserts",
			ImageURL:    "https://example.com/img/tiramisu.jpg",
			IsAvailable: &unavailable,
			Sizes: []menu.SizeOption{
				{ID: "regular", Label: "Regular", PriceModifier: decimal.Zero},
			},
		},
	}

	for _, item := range items {
		if _, err := catalog.CreateItem(item); err != nil {
			log.Fatalf("Seed %q: %v", item.Name, err)
		}
	}
	return catalog
}
