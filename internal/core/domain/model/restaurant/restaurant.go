// Package restaurant implements the Restaurant aggregate: identity and
// contact details, one embedded menu, and a running customer rating.
package restaurant

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/pkg/errs"
	"foodmate/internal/pkg/guard"
)

const (
	// defaultSeedAverage is the rating a new restaurant starts with.
	defaultSeedAverage = 4.5
	// defaultSeedCount weights the seed as a single vote.
	defaultSeedCount = 1
)

// Domain errors for restaurant operations.
var (
	// ErrRestaurantNameIsRequired is returned when creating a restaurant without a name.
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("restaurant name")
	// ErrContactEmailIsRequired is returned when creating a restaurant without contact info.
	ErrContactEmailIsRequired = errs.NewValueIsRequiredError("contact email")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is an aggregate root owning exactly one menu.
//
// Ownership by a RestaurantOwner is a back-reference held by the owner's
// account (a restaurant ID list), not by the restaurant itself.
//
// The running rating seeds at 4.5 with a count of one, so the first real
// vote is averaged against a plausible default rather than replacing it.
type Restaurant struct {
	// id uniquely identifies the restaurant
	id kernel.ID
	// name is the display name
	name string
	// cuisine is the restaurant-level cuisine tag
	cuisine menu.Cuisine
	// contactEmail is the restaurant's contact address
	contactEmail string
	// menu is the restaurant's dish catalog
	menu *menu.Menu
	// rating is the running average of food scores
	rating kernel.RunningAverage

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant with a generated ID, an empty menu,
// and the default seeded rating.
func NewRestaurant(name string, cuisine menu.Cuisine, contactEmail string) (*Restaurant, error) {
	rating, err := kernel.NewRunningAverage(defaultSeedAverage, defaultSeedCount)
	if err != nil {
		return nil, err
	}
	return RestoreRestaurant(kernel.NewID(), name, cuisine, contactEmail, menu.NewMenu(), rating)
}

// RestoreRestaurant reconstructs a restaurant from persisted state,
// including its menu and accumulated rating. Used by storage adapters.
func RestoreRestaurant(
	id kernel.ID,
	name string,
	cuisine menu.Cuisine,
	contactEmail string,
	restaurantMenu *menu.Menu,
	rating kernel.RunningAverage,
) (*Restaurant, error) {
	r := &Restaurant{
		menu:   restaurantMenu,
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setCuisine(cuisine),
		r.setContactEmail(contactEmail),
	); err != nil {
		return nil, err
	}
	if r.menu == nil {
		r.menu = menu.NewMenu()
	}

	return r, nil
}

// Validate ensures the restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by identity.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.ID {
	return r.id
}

// Name returns the display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Cuisine returns the restaurant-level cuisine tag.
func (r *Restaurant) Cuisine() menu.Cuisine {
	return r.cuisine
}

// ContactEmail returns the restaurant's contact address.
func (r *Restaurant) ContactEmail() string {
	return r.contactEmail
}

// Menu returns the restaurant's catalog. Callers mutate it through the
// menu's own validated operations.
func (r *Restaurant) Menu() *menu.Menu {
	return r.menu
}

// Rating returns the running average of food scores.
func (r *Restaurant) Rating() kernel.RunningAverage {
	return r.rating
}

// ApplyRating folds one food score into the restaurant's running average.
func (r *Restaurant) ApplyRating(score kernel.Stars) error {
	folded, err := r.rating.Fold(score)
	if err != nil {
		return err
	}
	r.rating = folded
	return nil
}

func (r *Restaurant) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCuisine(cuisine menu.Cuisine) error {
	if err := cuisine.Validate(); err != nil {
		return err
	}
	r.cuisine = cuisine
	return nil
}

func (r *Restaurant) setContactEmail(email string) error {
	if email == "" {
		return ErrContactEmailIsRequired
	}
	r.contactEmail = email
	return nil
}
