package queries

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var ErrGetOffersQueryIsNotConstructed = errors.New(
	"GetOffersQuery must be created via NewGetOffersQuery constructor",
)

// GetOffersQuery retrieves the promotional offer catalog.
type GetOffersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOffersQuery creates a query to list all offers.
func NewGetOffersQuery() GetOffersQuery {
	return GetOffersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetOffersQueryIsNotConstructed)
}

// OfferResponse represents one offer in the read model.
type OfferResponse struct {
	Code            string
	Value           kernel.Money
	IsPercentage    bool
	MinOrderValue   kernel.Money
	RequiresLoyalty bool
}
