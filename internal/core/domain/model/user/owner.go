package user

import (
	"errors"
	"fmt"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

// ErrOwnerIsNotConstructed is returned when using an improperly initialized RestaurantOwner.
var ErrOwnerIsNotConstructed = errors.New("RestaurantOwner must be created via NewRestaurantOwner constructor")

// RestaurantOwner is the catalog-managing variant of Account. Ownership of
// restaurants is the ID list held here; the restaurants themselves carry no
// back-reference.
type RestaurantOwner struct {
	identity

	restaurantIDs []kernel.ID

	guard guard.ConstructorGuard
}

// NewRestaurantOwner creates an owner with a generated ID and no restaurants.
func NewRestaurantOwner(name, password string) (*RestaurantOwner, error) {
	return RestoreRestaurantOwner(kernel.NewID(), name, password, nil)
}

// RestoreRestaurantOwner reconstructs an owner from persisted state.
// Used by storage adapters.
func RestoreRestaurantOwner(
	id kernel.ID,
	name, password string,
	restaurantIDs []kernel.ID,
) (*RestaurantOwner, error) {
	base, err := newIdentity(id, name, password)
	if err != nil {
		return nil, err
	}

	owned := make([]kernel.ID, len(restaurantIDs))
	copy(owned, restaurantIDs)

	return &RestaurantOwner{
		identity:      base,
		restaurantIDs: owned,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the owner was created through a constructor.
func (o *RestaurantOwner) Validate() error {
	if o == nil {
		return ErrOwnerIsNotConstructed
	}
	return o.guard.Validate(ErrOwnerIsNotConstructed)
}

// Role returns RoleRestaurantOwner.
func (o *RestaurantOwner) Role() Role {
	return RoleRestaurantOwner
}

// RestaurantIDs returns the IDs of the owner's restaurants.
// The returned slice is a copy to prevent external modification.
func (o *RestaurantOwner) RestaurantIDs() []kernel.ID {
	out := make([]kernel.ID, len(o.restaurantIDs))
	copy(out, o.restaurantIDs)
	return out
}

// AddRestaurant records ownership of a restaurant.
func (o *RestaurantOwner) AddRestaurant(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	for _, existing := range o.restaurantIDs {
		if existing.IsEqual(restaurantID) {
			return nil
		}
	}
	o.restaurantIDs = append(o.restaurantIDs, restaurantID)
	return nil
}

// OwnsRestaurant reports whether the owner holds the given restaurant.
func (o *RestaurantOwner) OwnsRestaurant(restaurantID kernel.ID) bool {
	for _, existing := range o.restaurantIDs {
		if existing.IsEqual(restaurantID) {
			return true
		}
	}
	return false
}

// DescribeProfile renders the owner profile summary.
func (o *RestaurantOwner) DescribeProfile() string {
	return fmt.Sprintf("Restaurant Owner %s (%s) | Owned Restaurants: %d",
		o.Name(), o.ID(), len(o.restaurantIDs))
}
