package queries

import (
	"context"

	"foodmate/internal/core/ports"
)

// GetRestaurantsQueryHandler lists the restaurant catalog with aggregate
// ratings and menu sizes.
type GetRestaurantsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetRestaurantsQueryHandler creates a handler for catalog listing.
func NewGetRestaurantsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the catalog listing in deterministic ID order.
func (h GetRestaurantsQueryHandler) Handle(ctx context.Context, query GetRestaurantsQuery) ([]RestaurantResponse, error) {
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

	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]RestaurantResponse, 0, len(restaurants))
	for _, aggregate := range restaurants {
		responses = append(responses, RestaurantResponse{
			ID:        aggregate.ID(),
			Name:      aggregate.Name(),
			Cuisine:   aggregate.Cuisine().String(),
			Rating:    aggregate.Rating().String(),
			DishCount: len(aggregate.Menu().Dishes()),
		})
	}
	return responses, nil
}
