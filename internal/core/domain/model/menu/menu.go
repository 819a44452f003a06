package menu

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
)

// ErrDuplicateDishID is returned when adding a dish whose ID already exists
// in the menu.
var ErrDuplicateDishID = errors.New("dish with the same ID already exists in the menu")

// Menu is the ordered dish collection of one restaurant.
//
// Dishes keep their insertion order; Filter returns matching dishes as a
// subsequence in that order. Dish names are not unique, so RemoveDishByName
// removes every dish sharing the name rather than silently picking one.
type Menu struct {
	dishes []*Dish
}

// NewMenu creates an empty menu.
func NewMenu() *Menu {
	return &Menu{}
}

// RestoreMenu reconstructs a menu from persisted dishes, preserving order.
func RestoreMenu(dishes []*Dish) (*Menu, error) {
	m := NewMenu()
	for _, dish := range dishes {
		if err := m.AddDish(dish); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddDish appends a dish to the menu.
// The dish must be valid and carry an ID not already present.
func (m *Menu) AddDish(dish *Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}
	for _, existing := range m.dishes {
		if existing.IsEqual(dish) {
			return ErrDuplicateDishID
		}
	}
	m.dishes = append(m.dishes, dish)
	return nil
}

// RemoveDishByName removes every dish whose name matches exactly and returns
// how many were removed. Zero removals is not an error.
func (m *Menu) RemoveDishByName(name string) int {
	kept := m.dishes[:0]
	removed := 0
	for _, dish := range m.dishes {
		if dish.Name() == name {
			removed++
			continue
		}
		kept = append(kept, dish)
	}
	m.dishes = kept
	return removed
}

// Filter returns the dishes matching all three predicates. Each predicate is
// an exact match unless the filter value is its wildcard (cuisine Any,
// course Any, dietary Both), which matches everything. An empty result is
// returned as an empty slice, never as an error.
func (m *Menu) Filter(cuisine Cuisine, course Course, dietary DietaryType) ([]*Dish, error) {
	if err := errors.Join(
		cuisine.ValidateFilter(),
		course.ValidateFilter(),
		dietary.ValidateFilter(),
	); err != nil {
		return nil, err
	}

	result := make([]*Dish, 0)
	for _, dish := range m.dishes {
		if cuisine.Matches(dish.Cuisine()) &&
			course.Matches(dish.Course()) &&
			dietary.Matches(dish.Dietary()) {
			result = append(result, dish)
		}
	}
	return result, nil
}

// DishByID finds a dish by identifier. The second result reports presence.
func (m *Menu) DishByID(id kernel.ID) (*Dish, bool) {
	for _, dish := range m.dishes {
		if dish.ID().IsEqual(id) {
			return dish, true
		}
	}
	return nil, false
}

// DishesByName returns every dish sharing the given name, in menu order.
// Rating aggregation uses this to update all same-named dishes consistently.
func (m *Menu) DishesByName(name string) []*Dish {
	var result []*Dish
	for _, dish := range m.dishes {
		if dish.Name() == name {
			result = append(result, dish)
		}
	}
	return result
}

// Dishes returns the full menu in insertion order.
// The returned slice is a copy to prevent external modification.
func (m *Menu) Dishes() []*Dish {
	out := make([]*Dish, len(m.dishes))
	copy(out, m.dishes)
	return out
}
