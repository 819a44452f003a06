package queries

import (
	"context"

	"foodmate/internal/core/ports"
)

// GetOffersQueryHandler lists the promotional offer catalog.
type GetOffersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOffersQueryHandler creates a handler for offer listing.
func NewGetOffersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOffersQueryHandler {
	return GetOffersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the offer listing in code order.
func (h GetOffersQueryHandler) Handle(ctx context.Context, query GetOffersQuery) ([]OfferResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offers, err := uow.OfferRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OfferResponse, 0, len(offers))
	for _, promo := range offers {
		responses = append(responses, OfferResponse{
			Code:            promo.Code(),
			Value:           promo.Value(),
			IsPercentage:    promo.IsPercentage(),
			MinOrderValue:   promo.MinOrderValue(),
			RequiresLoyalty: promo.RequiresLoyalty(),
		})
	}
	return responses, nil
}
