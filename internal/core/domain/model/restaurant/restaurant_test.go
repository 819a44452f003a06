package restaurant_test

import (
	"testing"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant("Spice Garden", menu.CuisineIndian, "spice@mail.com")
	require.NoError(t, err)
	return r
}

func TestNewRestaurant(t *testing.T) {
	t.Run("should create with seeded rating and empty menu", func(t *testing.T) {
		r := newRestaurant(t)

		require.NoError(t, r.Validate())
		require.NoError(t, r.ID().Validate())
		assert.Equal(t, "Spice Garden", r.Name())
		assert.Equal(t, menu.CuisineIndian, r.Cuisine())
		assert.InDelta(t, 4.5, r.Rating().Average(), 0.0001)
		assert.Equal(t, 1, r.Rating().Count())
		assert.Empty(t, r.Menu().Dishes())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := restaurant.NewRestaurant("", menu.CuisineIndian, "a@mail.com")
		require.ErrorIs(t, err, restaurant.ErrRestaurantNameIsRequired)

		_, err = restaurant.NewRestaurant("Cafe", menu.CuisineIndian, "")
		require.ErrorIs(t, err, restaurant.ErrContactEmailIsRequired)
	})

	t.Run("should reject the cuisine wildcard", func(t *testing.T) {
		_, err := restaurant.NewRestaurant("Cafe", menu.CuisineAny, "a@mail.com")
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var r restaurant.Restaurant
		require.ErrorIs(t, r.Validate(), restaurant.ErrRestaurantIsNotConstructed)
	})
}

func TestRestaurant_ApplyRating(t *testing.T) {
	t.Run("should average against the seed", func(t *testing.T) {
		r := newRestaurant(t)

		// (4.5*1 + 5) / 2 = 4.75
		require.NoError(t, r.ApplyRating(kernel.Stars(5)))

		assert.InDelta(t, 4.75, r.Rating().Average(), 0.0001)
		assert.Equal(t, 2, r.Rating().Count())
	})

	t.Run("should reject invalid scores", func(t *testing.T) {
		r := newRestaurant(t)
		require.Error(t, r.ApplyRating(kernel.Stars(6)))
		assert.Equal(t, 1, r.Rating().Count())
	})
}

func TestRestaurant_Menu(t *testing.T) {
	t.Run("menu mutations should be visible through the aggregate", func(t *testing.T) {
		r := newRestaurant(t)
		p, err := kernel.NewMoneyFromString("12.50")
		require.NoError(t, err)
		dish, err := menu.NewDish("Paneer Butter Masala", p, menu.DietaryVeg, menu.CuisineIndian, menu.CourseDinner)
		require.NoError(t, err)

		require.NoError(t, r.Menu().AddDish(dish))

		assert.Len(t, r.Menu().Dishes(), 1)
	})
}
