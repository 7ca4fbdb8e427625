package order

import (
	"errors"
	"testing"
)

var allStatuses = []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered}

// successor returns the single legal next status, or "" for the terminal state.
func successor(s Status) Status {
	switch s {
	case StatusPending:
		return StatusPreparing
	case StatusPreparing:
		return StatusReady
	case StatusReady:
		return StatusDelivered
	}
	return ""
}

func TestValidateTransition_ForwardEdges(t *testing.T) {
	if err := ValidateTransition(StatusPending, StatusPreparing); err != nil {
		t.Errorf("Pending -> Preparing: %v", err)
	}
	if err := ValidateTransition(StatusPreparing, StatusReady); err != nil {
		t.Errorf("Preparing -> Ready: %v", err)
	}
	if err := ValidateTransition(StatusReady, StatusDelivered); err != nil {
		t.Errorf("Ready -> Delivered: %v", err)
	}
}

// Exhaustive: from every status, every target other than the single
// successor must fail, and Delivered has no legal targets at all.
func TestValidateTransition_EverythingElseFails(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			err := ValidateTransition(from, to)
			if to == successor(from) {
				if err != nil {
					t.Errorf("%s -> %s should succeed: %v", from, to, err)
				}
				continue
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s -> %s should fail with ErrInvalidTransition, got: %v", from, to, err)
			}
		}
	}
}

func TestValidateTransition_SkipFromPending(t *testing.T) {
	if err := ValidateTransition(StatusPending, StatusReady); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Pending -> Ready: expected ErrInvalidTransition, got %v", err)
	}
	if err := ValidateTransition(StatusPending, StatusDelivered); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Pending -> Delivered: expected ErrInvalidTransition, got %v", err)
	}
}

func TestValidateTransition_Backward(t *testing.T) {
	if err := ValidateTransition(StatusReady, StatusPreparing); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Ready -> Preparing: expected ErrInvalidTransition, got %v", err)
	}
}

func TestValidateTransition_SameState(t *testing.T) {
	if err := ValidateTransition(StatusPreparing, StatusPreparing); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Preparing -> Preparing: expected ErrInvalidTransition, got %v", err)
	}
}

func TestValidateTransition_DeliveredIsTerminal(t *testing.T) {
	for _, to := range allStatuses {
		if err := ValidateTransition(StatusDelivered, to); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Delivered -> %s: expected ErrInvalidTransition, got %v", to, err)
		}
	}
	if !StatusDelivered.Terminal() {
		t.Error("Delivered must be terminal")
	}
	if StatusPending.Terminal() {
		t.Error("Pending must not be terminal")
	}
}

func TestCanTransition_MirrorsValidate(t *testing.T) {
	if !CanTransition(StatusPending, StatusPreparing) {
		t.Error("Pending -> Preparing should be allowed")
	}
	if CanTransition(StatusPending, StatusDelivered) {
		t.Error("Pending -> Delivered should not be allowed")
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := ParseStatus(string(s))
		if err != nil {
			t.Errorf("parse %q: %v", s, err)
		}
		if got != s {
			t.Errorf("parse %q: got %q", s, got)
		}
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	if _, err := ParseStatus("Cancelled"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got: %v", err)
	}
	if _, err := ParseStatus("pending"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("labels are case sensitive, got: %v", err)
	}
}
