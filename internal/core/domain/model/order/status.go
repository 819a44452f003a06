package order

import (
	"fmt"
	"strings"

	"foodmate/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered
//	   │
//	   └──> Cancelled
//
// Transitions are forward-only with no skips. Delivered and Cancelled are
// final states. Cancellation is allowed from Pending only: once a kitchen
// starts preparing, the order runs to completion.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Pending orders may still be cancelled.
	Pending

	// Preparing indicates the restaurant has accepted the order and the
	// kitchen is working on it.
	Preparing

	// OutForDelivery indicates the order has left the restaurant with a
	// delivery partner.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the customer withdrew the order before
	// preparation started. This is a final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a textual status (case-insensitive) into its enum
// value. Unknown is not parseable.
func ParseStatus(s string) (Status, error) {
	for value, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return value, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order is still in flight, i.e. placed but
// neither delivered nor cancelled.
func (s Status) IsActive() bool {
	return s == Pending || s == Preparing || s == OutForDelivery
}

// Next returns the status that follows s on the happy path.
//
// Returns an error for terminal statuses and for Unknown.
func (s Status) Next() (Status, error) {
	switch s {
	case Pending:
		return Preparing, nil
	case Preparing:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s has no next status", s.String()),
		)
	}
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition. The happy path advances one step at a time; the only branch is
// Pending to Cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	if s == Pending && next == Cancelled {
		return true
	}
	following, err := s.Next()
	return err == nil && following == next
}

// TransitionTo validates the move from s to next and returns next.
//
// Returns an error describing both statuses when the transition is not
// allowed, so callers can surface it verbatim.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()),
		)
	}
	return next, nil
}
