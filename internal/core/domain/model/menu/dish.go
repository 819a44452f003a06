package menu

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/errs"
	"foodmate/internal/pkg/guard"
)

// Domain errors for dish operations.
var (
	// ErrDishNameIsRequired is returned when creating a dish without a name.
	ErrDishNameIsRequired = errs.NewValueIsRequiredError("dish name")
	// ErrDishPriceIsInvalid is returned when a dish price is not positive.
	ErrDishPriceIsInvalid = errs.NewValueIsInvalidError("dish price must be positive")
	// ErrDishIsNotConstructed is returned when using an improperly initialized Dish.
	ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")
)

// Dish is a catalog entry on a restaurant's menu.
//
// Identity is a generated ID, unique within the owning catalog. The name is
// not guaranteed unique, so name-based operations deliberately act on every
// dish sharing the name (see Menu.RemoveDishByName).
//
// All attributes are immutable after construction except the running rating,
// which only rating aggregation updates.
type Dish struct {
	// id uniquely identifies the dish within its catalog
	id kernel.ID
	// name is the display name; not guaranteed unique per menu
	name string
	// price is the fixed-point unit price, always positive
	price kernel.Money
	// dietary is Veg or NonVeg, never the Both wildcard
	dietary DietaryType
	// cuisine and course tag the dish for filtering
	cuisine Cuisine
	course  Course
	// rating starts at count zero meaning "no rating yet"
	rating kernel.RunningAverage

	guard guard.ConstructorGuard
}

// NewDish creates a dish with a freshly generated ID and no ratings.
// All attributes are validated; errors for multiple invalid attributes are
// joined.
func NewDish(
	name string,
	price kernel.Money,
	dietary DietaryType,
	cuisine Cuisine,
	course Course,
) (*Dish, error) {
	rating, err := kernel.NewRunningAverage(0, 0)
	if err != nil {
		return nil, err
	}
	return RestoreDish(kernel.NewID(), name, price, dietary, cuisine, course, rating)
}

// RestoreDish reconstructs a dish from persisted state, including its
// accumulated rating. Used by storage adapters.
func RestoreDish(
	id kernel.ID,
	name string,
	price kernel.Money,
	dietary DietaryType,
	cuisine Cuisine,
	course Course,
	rating kernel.RunningAverage,
) (*Dish, error) {
	dish := &Dish{
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dish.setID(id),
		dish.setName(name),
		dish.setPrice(price),
		dish.setDietary(dietary),
		dish.setCuisine(cuisine),
		dish.setCourse(course),
	); err != nil {
		return nil, err
	}

	return dish, nil
}

// Validate ensures the dish was created through a constructor.
func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

// IsEqual compares two dishes by identity.
func (d *Dish) IsEqual(other *Dish) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dish identifier.
func (d *Dish) ID() kernel.ID {
	return d.id
}

// Name returns the display name.
func (d *Dish) Name() string {
	return d.name
}

// Price returns the unit price.
func (d *Dish) Price() kernel.Money {
	return d.price
}

// Dietary returns the dietary attribute (Veg or NonVeg).
func (d *Dish) Dietary() DietaryType {
	return d.dietary
}

// Cuisine returns the cuisine tag.
func (d *Dish) Cuisine() Cuisine {
	return d.cuisine
}

// Course returns the meal-slot tag.
func (d *Dish) Course() Course {
	return d.course
}

// Rating returns the running average of star votes. Count zero means the
// dish has not been rated yet.
func (d *Dish) Rating() kernel.RunningAverage {
	return d.rating
}

// ApplyRating folds one star score into the dish's running average.
// This is the only mutation a dish undergoes after creation.
func (d *Dish) ApplyRating(score kernel.Stars) error {
	folded, err := d.rating.Fold(score)
	if err != nil {
		return err
	}
	d.rating = folded
	return nil
}

func (d *Dish) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	if name == "" {
		return ErrDishNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Dish) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return ErrDishPriceIsInvalid
	}
	d.price = price
	return nil
}

func (d *Dish) setDietary(dietary DietaryType) error {
	if err := dietary.Validate(); err != nil {
		return err
	}
	d.dietary = dietary
	return nil
}

func (d *Dish) setCuisine(cuisine Cuisine) error {
	if err := cuisine.Validate(); err != nil {
		return err
	}
	d.cuisine = cuisine
	return nil
}

func (d *Dish) setCourse(course Course) error {
	if err := course.Validate(); err != nil {
		return err
	}
	d.course = course
	return nil
}
