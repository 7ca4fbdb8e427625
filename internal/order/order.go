// Package order owns the order lifecycle: aggregation of cart snapshots
// into an order, and the finite state machine governing status progress.
// It is the sole authority on which status transitions are legal; UI
// affordances (enabled buttons and the like) are derived views of
// CanTransition, never an independent source of truth.
package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/verdante/menucore/internal/cart"
	"github.com/verdante/menucore/internal/notify"
)

// Errors returned by the order service.
var (
	ErrEmptyItems    = errors.New("items are required")
	ErrOrderNotFound = errors.New("order not found")
	ErrStatusChanged = errors.New("order status changed, please retry")
)

// Event types broadcast on the notify hub.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// Order aggregates cart snapshots submitted together. Created once; only
// Status is mutated afterwards, and only through Service.Transition.
type Order struct {
	ID           uuid.UUID       `json:"id"`
	CustomerName string          `json:"customer_name"`
	TableNumber  string          `json:"table_number"`
	Items        []cart.CartItem `json:"items"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Store defines the persistence methods the service needs.
// Satisfied by *store.Orders; narrow interface for testability.
type Store interface {
	CreateOrder(o Order) error
	GetOrder(id uuid.UUID) (Order, error)
	ListOrders() ([]Order, error)
	// UpdateStatus applies the status change only if the order's current
	// status still equals from, and returns the updated order. Returns
	// ErrStatusChanged when another caller advanced the order first.
	UpdateStatus(id uuid.UUID, from, to Status) (Order, error)
}

// Service handles order business logic.
type Service struct {
	store Store
	hub   *notify.Hub
}

// NewService creates a Service. hub may be nil when no caller subscribes to
// lifecycle events.
func NewService(store Store, hub *notify.Hub) *Service {
	return &Service{store: store, hub: hub}
}

// Create validates, aggregates, and stores a new order. New orders always
// start Pending; the total is the sum of the items' snapshot totals.
func (s *Service) Create(customerName, tableNumber string, items []cart.CartItem) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyItems
	}

	total := decimal.Zero
	copied := make([]cart.CartItem, len(items))
	for i, item := range items {
		copied[i] = item
		total = total.Add(item.TotalPrice)
	}

	o := Order{
		ID:           uuid.New(),
		CustomerName: customerName,
		TableNumber:  tableNumber,
		Items:        copied,
		TotalPrice:   total,
		Status:       StatusPending,
		CreatedAt:    time.Now(),
	}

	if err := s.store.CreateOrder(o); err != nil {
		return Order{}, fmt.Errorf("create order: %w", err)
	}

	s.publish(EventOrderCreated, o)
	return o, nil
}

// Transition advances an order along the status chain. The store applies
// the change as a compare-and-swap on the current status, so two callers
// racing past the same edge cannot both succeed.
func (s *Service) Transition(id uuid.UUID, target Status) (Order, error) {
	if _, err := ParseStatus(string(target)); err != nil {
		return Order{}, err
	}

	current, err := s.store.GetOrder(id)
	if err != nil {
		return Order{}, err
	}

	if err := ValidateTransition(current.Status, target); err != nil {
		return Order{}, err
	}

	updated, err := s.store.UpdateStatus(id, current.Status, target)
	if err != nil {
		return Order{}, err
	}

	s.publish(EventOrderStatusChanged, updated)
	return updated, nil
}

// Get returns a single order.
func (s *Service) Get(id uuid.UUID) (Order, error) {
	return s.store.GetOrder(id)
}

// List returns all orders newest first. The sort is stable and keyed on the
// creation timestamp only, never on mutation order.
func (s *Service) List() ([]Order, error) {
	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *Service) publish(eventType string, o Order) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(o)
	if err != nil {
		log.Printf("ERROR: marshal %s event: %v", eventType, err)
		return
	}
	s.hub.Broadcast(notify.Event{Type: eventType, Payload: payload})
}
