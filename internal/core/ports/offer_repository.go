package ports

import (
	"context"

	"foodmate/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for the promotional
// offer catalog. Offers are immutable, so there is no update method.
type OfferRepository interface {
	// Add persists a new offer. The code must not be taken.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// GetByCode retrieves an offer by its public code.
	GetByCode(ctx context.Context, code string) (*offer.Offer, error)

	// GetAll retrieves the whole catalog in deterministic code order.
	GetAll(ctx context.Context) ([]*offer.Offer, error)
}
