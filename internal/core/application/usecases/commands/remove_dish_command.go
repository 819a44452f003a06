package commands

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var ErrRemoveDishCommandIsNotConstructed = errors.New(
	"RemoveDishCommand must be created via NewRemoveDishCommand constructor",
)

// RemoveDishCommand represents a request by a restaurant owner to remove a
// dish from a menu by name. Every dish sharing the name is removed.
type RemoveDishCommand struct { //nolint:recvcheck //using for validation
	ownerID      kernel.ID
	restaurantID kernel.ID
	dishName     string

	guard guard.ConstructorGuard
}

// NewRemoveDishCommand creates a command to remove a dish by name.
func NewRemoveDishCommand(ownerID, restaurantID kernel.ID, dishName string) (RemoveDishCommand, error) {
	cmd := RemoveDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setDishName(dishName),
	); err != nil {
		return RemoveDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDishCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDishCommandIsNotConstructed)
}

// OwnerID returns the acting restaurant owner's ID.
func (c RemoveDishCommand) OwnerID() kernel.ID {
	return c.ownerID
}

// RestaurantID returns the target restaurant's ID.
func (c RemoveDishCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// DishName returns the name whose dishes are removed.
func (c RemoveDishCommand) DishName() string {
	return c.dishName
}

func (c *RemoveDishCommand) setOwnerID(ownerID kernel.ID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *RemoveDishCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *RemoveDishCommand) setDishName(dishName string) error {
	if dishName == "" {
		return ErrDishNameIsRequired
	}
	c.dishName = dishName
	return nil
}
