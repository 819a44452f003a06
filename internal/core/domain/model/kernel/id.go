package kernel

import (
	"fmt"

	"foodmate/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates that an ID was not initialized through one of
// the constructor functions. It is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object identifying an entity (user, restaurant, dish, order).
// It wraps the github.com/google/uuid implementation to provide domain-specific
// behavior and ensure immutability.
//
// The zero value of ID is invalid and must be constructed using NewID or
// IDFromString. All cross-entity references in the system (customer to order
// history, owner to restaurant, order to partner) are IDs resolved through the
// coordinator's repositories, never pointers.
//
// Example usage:
//
//	orderID := kernel.NewID()
//
//	restored, err := kernel.IDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type ID struct {
	id uuid.UUID
}

// NewID generates a new random identifier (UUID version 4).
// This is the primary way to create identifiers for new entities.
func NewID() ID {
	return ID{id: uuid.New()}
}

// IDFromString parses an ID from its string representation.
// It accepts the standard UUID text formats and returns an error for
// anything else. Typically used when resolving identifiers arriving from
// the interaction layer.
func IDFromString(s string) (ID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("invalid ID format: %w", err)
	}
	return ID{id: id}, nil
}

// Validate returns ErrIDIsNotConstructed for a zero-value ID and nil otherwise.
func (i ID) Validate() error {
	if i.id == uuid.Nil {
		return ErrIDIsNotConstructed
	}
	return nil
}

// IsZero reports whether the ID is the invalid zero value. Used for optional
// references such as an order's delivery partner before assignment.
func (i ID) IsZero() bool {
	return i.id == uuid.Nil
}

// IsEqual compares two IDs by value.
func (i ID) IsEqual(other ID) bool {
	return i.id == other.id
}

// Less reports whether i orders before other in lexical UUID order.
// Collections sorted with Less iterate deterministically.
func (i ID) Less(other ID) bool {
	return i.String() < other.String()
}

// String returns the canonical textual form of the ID.
func (i ID) String() string {
	return i.id.String()
}
