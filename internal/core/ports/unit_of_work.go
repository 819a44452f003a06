package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and scopes repository access.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts the transaction. Repositories must not be used before
	// Begin or after Commit/Rollback.
	Begin(ctx context.Context) error

	// Commit makes every change since Begin visible to other transactions.
	Commit(ctx context.Context) error

	// Rollback discards every change since Begin.
	// Safe to defer after a successful Commit: it is then a no-op.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the transaction.
	UserRepository() UserRepository

	// RestaurantRepository returns a RestaurantRepository bound to the transaction.
	RestaurantRepository() RestaurantRepository

	// OrderRepository returns an OrderRepository bound to the transaction.
	OrderRepository() OrderRepository

	// OfferRepository returns an OfferRepository bound to the transaction.
	OfferRepository() OfferRepository
}
