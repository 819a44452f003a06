// Package ports defines the contracts between the application core and its
// adapters: repositories for each aggregate, the unit of work that scopes
// them to one business transaction, and the notifier for outbound messages.
// These interfaces establish dependency inversion: the core owns the
// contract, the adapters implement it.
package ports

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts of all
// roles. Accounts are stored polymorphically; callers needing a concrete
// role type assert on the returned Account.
type UserRepository interface {
	// Add persists a new account. The account must be valid and its name
	// must not be taken.
	Add(ctx context.Context, account user.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, account user.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (user.Account, error)

	// GetByName retrieves an account by its unique display name.
	// Used by login-style lookups from the interaction layer.
	GetByName(ctx context.Context, name string) (user.Account, error)

	// GetAllPartners retrieves every delivery partner, available or not,
	// in deterministic ID order. Used by the dispatch workflow.
	GetAllPartners(ctx context.Context) ([]*user.DeliveryPartner, error)
}
