package queries

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves the whole restaurant catalog.
// This is a parameterless query; the catalog is small enough to list.
type GetRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query to list all restaurants.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// RestaurantResponse represents one restaurant in the read model.
type RestaurantResponse struct {
	ID        kernel.ID
	Name      string
	Cuisine   string
	Rating    string
	DishCount int
}
