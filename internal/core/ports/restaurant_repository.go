package ports

import (
	"context"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates, including their menus and accumulated ratings.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant, its menu included.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant in deterministic ID order.
	// The catalog is small; filtering happens in the query layer.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)
}
