package ports

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders stay in the repository for their whole life; status predicates
// distinguish in-flight orders from finished ones.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAllActive retrieves orders that are placed but not yet delivered
	// or cancelled, in deterministic ID order.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllUnassigned retrieves active orders that have no delivery
	// partner yet. Used by the assignment retry job.
	GetAllUnassigned(ctx context.Context) ([]*order.Order, error)

	// GetAllForCustomer retrieves every order a customer has created,
	// finished ones included.
	GetAllForCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error)
}
