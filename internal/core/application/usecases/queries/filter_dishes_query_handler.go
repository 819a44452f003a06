package queries

import (
	"context"

	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/core/ports"
)

// FilterDishesQueryHandler retrieves a restaurant's dishes through the
// catalog browse filter.
type FilterDishesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewFilterDishesQueryHandler creates a handler for dish filtering.
func NewFilterDishesQueryHandler(uowFactory ports.UnitOfWorkFactory) FilterDishesQueryHandler {
	return FilterDishesQueryHandler{uowFactory: uowFactory}
}

// Handle executes the filter against the restaurant's live menu.
// No matching dish yields an empty slice, not an error.
func (h FilterDishesQueryHandler) Handle(ctx context.Context, query FilterDishesQuery) ([]DishResponse, error) {
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

	aggregate, err := uow.RestaurantRepository().Get(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}

	dishes, err := aggregate.Menu().Filter(query.Cuisine(), query.Course(), query.Dietary())
	if err != nil {
		return nil, err
	}

	responses := make([]DishResponse, 0, len(dishes))
	for _, dish := range dishes {
		responses = append(responses, toDishResponse(dish))
	}
	return responses, nil
}

func toDishResponse(dish *menu.Dish) DishResponse {
	return DishResponse{
		ID:      dish.ID(),
		Name:    dish.Name(),
		Price:   dish.Price(),
		Dietary: dish.Dietary().String(),
		Cuisine: dish.Cuisine().String(),
		Course:  dish.Course().String(),
		Rating:  dish.Rating().String(),
	}
}
