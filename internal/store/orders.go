package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/verdante/menucore/internal/cart"
	"github.com/verdante/menucore/internal/order"
)

// Orders is the in-memory order store. It satisfies order.Store and is the
// single serialization point for status changes: UpdateStatus applies a
// compare-and-swap under the write lock, so two concurrent advances past
// the same edge cannot both succeed.
type Orders struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]order.Order
}

// NewOrders creates an empty order store.
func NewOrders() *Orders {
	return &Orders{orders: make(map[uuid.UUID]order.Order)}
}

// CreateOrder stores a new order.
func (s *Orders) CreateOrder(o order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[o.ID]; exists {
		return fmt.Errorf("order %s already exists", o.ID)
	}
	s.orders[o.ID] = cloneOrder(o)
	return nil
}

// GetOrder returns a copy of a single order.
func (s *Orders) GetOrder(id uuid.UUID) (order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return order.Order{}, fmt.Errorf("%w: %s", order.ErrOrderNotFound, id)
	}
	return cloneOrder(o), nil
}

// ListOrders returns copies of all orders in unspecified order; callers
// sort for display.
func (s *Orders) ListOrders() ([]order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

// UpdateStatus sets the order's status to to only if its current status
// still equals from. Returns order.ErrStatusChanged when the order was
// advanced by someone else between the caller's read and this write.
func (s *Orders) UpdateStatus(id uuid.UUID, from, to order.Status) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return order.Order{}, fmt.Errorf("%w: %s", order.ErrOrderNotFound, id)
	}
	if o.Status != from {
		return order.Order{}, fmt.Errorf("%w: now %s", order.ErrStatusChanged, o.Status)
	}

	o.Status = to
	s.orders[id] = o
	return cloneOrder(o), nil
}

func cloneOrder(o order.Order) order.Order {
	c := o
	c.Items = append([]cart.CartItem(nil), o.Items...)
	return c
}
