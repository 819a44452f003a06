// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the interaction layer and never
// mutate aggregates.
package queries

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/pkg/guard"
)

var ErrFilterDishesQueryIsNotConstructed = errors.New(
	"FilterDishesQuery must be created via NewFilterDishesQuery constructor",
)

// FilterDishesQuery retrieves the dishes of one restaurant matching a
// cuisine, course, and dietary filter. Each attribute accepts its wildcard
// (Any / Both) to skip that axis; filters combine with AND.
type FilterDishesQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID
	cuisine      menu.Cuisine
	course       menu.Course
	dietary      menu.DietaryType

	guard guard.ConstructorGuard
}

// NewFilterDishesQuery creates a dish filter query.
// Filter attributes are validated with wildcards allowed.
func NewFilterDishesQuery(restaurantID kernel.ID, cuisine menu.Cuisine,
	course menu.Course, dietary menu.DietaryType) (FilterDishesQuery, error) {
	q := FilterDishesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setRestaurantID(restaurantID),
		q.setFilter(cuisine, course, dietary),
	); err != nil {
		return FilterDishesQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q FilterDishesQuery) Validate() error {
	return q.guard.Validate(ErrFilterDishesQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is filtered.
func (q FilterDishesQuery) RestaurantID() kernel.ID {
	return q.restaurantID
}

// Cuisine returns the cuisine filter, possibly the wildcard.
func (q FilterDishesQuery) Cuisine() menu.Cuisine {
	return q.cuisine
}

// Course returns the course filter, possibly the wildcard.
func (q FilterDishesQuery) Course() menu.Course {
	return q.course
}

// Dietary returns the dietary filter, possibly the wildcard.
func (q FilterDishesQuery) Dietary() menu.DietaryType {
	return q.dietary
}

func (q *FilterDishesQuery) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	q.restaurantID = restaurantID
	return nil
}

func (q *FilterDishesQuery) setFilter(cuisine menu.Cuisine, course menu.Course, dietary menu.DietaryType) error {
	if err := errors.Join(
		cuisine.ValidateFilter(),
		course.ValidateFilter(),
		dietary.ValidateFilter(),
	); err != nil {
		return err
	}
	q.cuisine = cuisine
	q.course = course
	q.dietary = dietary
	return nil
}

// DishResponse represents one dish in the read model.
type DishResponse struct {
	ID      kernel.ID
	Name    string
	Price   kernel.Money
	Dietary string
	Cuisine string
	Course  string
	Rating  string
}
