package order

import (
	"errors"
	"fmt"
)

// Status is an order's position in the fulfillment pipeline.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusDelivered Status = "Delivered"
)

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// allowedTransitions defines valid status transitions. The chain is strictly
// linear: each non-terminal status has exactly one legal successor and
// Delivered has none.
var allowedTransitions = map[Status]Status{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

// ParseStatus validates a status label.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// ValidateTransition checks if the transition from current to next is
// allowed. Anything other than the single forward edge fails: skipping a
// status, moving backward, re-entering the same status, or leaving the
// terminal Delivered status.
func ValidateTransition(current, next Status) error {
	successor, ok := allowedTransitions[current]
	if !ok {
		return fmt.Errorf("%w: cannot transition from %s", ErrInvalidTransition, current)
	}
	if next != successor {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidTransition, current, next)
	}
	return nil
}

// CanTransition reports whether the edge is legal. UI layers derive button
// state from this instead of keeping their own transition rules.
func CanTransition(current, next Status) bool {
	return ValidateTransition(current, next) == nil
}

// Terminal reports whether the status has no outgoing edges.
func (s Status) Terminal() bool {
	_, ok := allowedTransitions[s]
	return !ok
}
