package menu_test

import (
	"testing"

	"foodmate/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMenu(t *testing.T) *menu.Menu {
	t.Helper()
	m := menu.NewMenu()
	require.NoError(t, m.AddDish(newDish(t, "Paneer Butter Masala", "12.50", menu.DietaryVeg, menu.CuisineIndian, menu.CourseDinner)))
	require.NoError(t, m.AddDish(newDish(t, "Veg Biryani", "10.00", menu.DietaryVeg, menu.CuisineIndian, menu.CourseLunch)))
	require.NoError(t, m.AddDish(newDish(t, "Chicken Tikka", "15.00", menu.DietaryNonVeg, menu.CuisineIndian, menu.CourseDinner)))
	require.NoError(t, m.AddDish(newDish(t, "Margherita Pizza", "18.00", menu.DietaryVeg, menu.CuisineItalian, menu.CourseDinner)))
	return m
}

func dishNames(dishes []*menu.Dish) []string {
	names := make([]string, len(dishes))
	for i, d := range dishes {
		names[i] = d.Name()
	}
	return names
}

func TestMenu_AddDish(t *testing.T) {
	t.Run("should keep insertion order", func(t *testing.T) {
		m := sampleMenu(t)
		assert.Equal(t,
			[]string{"Paneer Butter Masala", "Veg Biryani", "Chicken Tikka", "Margherita Pizza"},
			dishNames(m.Dishes()))
	})

	t.Run("should reject duplicate IDs", func(t *testing.T) {
		m := menu.NewMenu()
		dish := newDish(t, "Dal", "8.00", menu.DietaryVeg, menu.CuisineIndian, menu.CourseLunch)
		require.NoError(t, m.AddDish(dish))
		require.ErrorIs(t, m.AddDish(dish), menu.ErrDuplicateDishID)
	})

	t.Run("should reject invalid dishes", func(t *testing.T) {
		m := menu.NewMenu()
		require.Error(t, m.AddDish(&menu.Dish{}))
	})
}

func TestMenu_Filter(t *testing.T) {
	t.Run("wildcards should return the full menu", func(t *testing.T) {
		m := sampleMenu(t)

		dishes, err := m.Filter(menu.CuisineAny, menu.CourseAny, menu.DietaryBoth)

		require.NoError(t, err)
		assert.Len(t, dishes, 4)
	})

	t.Run("should AND all three predicates", func(t *testing.T) {
		m := sampleMenu(t)

		dishes, err := m.Filter(menu.CuisineIndian, menu.CourseDinner, menu.DietaryVeg)

		require.NoError(t, err)
		assert.Equal(t, []string{"Paneer Butter Masala"}, dishNames(dishes))
	})

	t.Run("should filter on single attributes", func(t *testing.T) {
		m := sampleMenu(t)

		byCuisine, err := m.Filter(menu.CuisineItalian, menu.CourseAny, menu.DietaryBoth)
		require.NoError(t, err)
		assert.Equal(t, []string{"Margherita Pizza"}, dishNames(byCuisine))

		byDietary, err := m.Filter(menu.CuisineAny, menu.CourseAny, menu.DietaryNonVeg)
		require.NoError(t, err)
		assert.Equal(t, []string{"Chicken Tikka"}, dishNames(byDietary))
	})

	t.Run("no match should yield an empty slice, not an error", func(t *testing.T) {
		m := sampleMenu(t)

		dishes, err := m.Filter(menu.CuisineJapanese, menu.CourseAny, menu.DietaryBoth)

		require.NoError(t, err)
		assert.NotNil(t, dishes)
		assert.Empty(t, dishes)
	})

	t.Run("should reject invalid filter values", func(t *testing.T) {
		m := sampleMenu(t)

		_, err := m.Filter(menu.CuisineUnknown, menu.CourseAny, menu.DietaryBoth)
		require.Error(t, err)
	})
}

func TestMenu_RemoveDishByName(t *testing.T) {
	t.Run("should remove every dish sharing the name", func(t *testing.T) {
		m := menu.NewMenu()
		require.NoError(t, m.AddDish(newDish(t, "Special Thali", "14.00", menu.DietaryVeg, menu.CuisineIndian, menu.CourseLunch)))
		require.NoError(t, m.AddDish(newDish(t, "Special Thali", "16.00", menu.DietaryNonVeg, menu.CuisineIndian, menu.CourseDinner)))
		require.NoError(t, m.AddDish(newDish(t, "Dal", "8.00", menu.DietaryVeg, menu.CuisineIndian, menu.CourseLunch)))

		removed := m.RemoveDishByName("Special Thali")

		assert.Equal(t, 2, removed)
		assert.Equal(t, []string{"Dal"}, dishNames(m.Dishes()))
	})

	t.Run("unknown name should remove nothing", func(t *testing.T) {
		m := sampleMenu(t)
		assert.Equal(t, 0, m.RemoveDishByName("Sushi"))
		assert.Len(t, m.Dishes(), 4)
	})
}

func TestMenu_Lookups(t *testing.T) {
	t.Run("should find dishes by ID", func(t *testing.T) {
		m := sampleMenu(t)
		want := m.Dishes()[2]

		got, ok := m.DishByID(want.ID())

		require.True(t, ok)
		assert.True(t, want.IsEqual(got))
	})

	t.Run("should report missing IDs", func(t *testing.T) {
		m := sampleMenu(t)
		other := newDish(t, "Sushi", "22.00", menu.DietaryNonVeg, menu.CuisineJapanese, menu.CourseDinner)

		_, ok := m.DishByID(other.ID())

		assert.False(t, ok)
	})

	t.Run("should find all dishes by name", func(t *testing.T) {
		m := menu.NewMenu()
		require.NoError(t, m.AddDish(newDish(t, "Special Thali", "14.00", menu.DietaryVeg, menu.CuisineIndian, menu.CourseLunch)))
		require.NoError(t, m.AddDish(newDish(t, "Special Thali", "16.00", menu.DietaryNonVeg, menu.CuisineIndian, menu.CourseDinner)))

		assert.Len(t, m.DishesByName("Special Thali"), 2)
		assert.Empty(t, m.DishesByName("Dal"))
	})
}
