package commands

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/pkg/guard"
)

var (
	ErrAddDishCommandIsNotConstructed = errors.New(
		"AddDishCommand must be created via NewAddDishCommand constructor",
	)
	ErrDishNameIsRequired = errors.New("dish name is required")
	ErrDishPriceIsInvalid = errors.New("dish price must not be negative")
)

// AddDishCommand represents a request by a restaurant owner to add a dish to
// one of their menus.
type AddDishCommand struct { //nolint:recvcheck //using for validation
	ownerID      kernel.ID
	restaurantID kernel.ID
	name         string
	price        kernel.Money
	dietary      menu.DietaryType
	cuisine      menu.Cuisine
	course       menu.Course

	guard guard.ConstructorGuard
}

// NewAddDishCommand creates a command to add a dish.
// All dish attributes are validated eagerly; attribute errors are joined.
func NewAddDishCommand(ownerID, restaurantID kernel.ID, name string, price kernel.Money,
	dietary menu.DietaryType, cuisine menu.Cuisine, course menu.Course) (AddDishCommand, error) {
	cmd := AddDishCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setAttributes(dietary, cuisine, course),
	); err != nil {
		return AddDishCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDishCommand) Validate() error {
	return c.guard.Validate(ErrAddDishCommandIsNotConstructed)
}

// OwnerID returns the acting restaurant owner's ID.
func (c AddDishCommand) OwnerID() kernel.ID {
	return c.ownerID
}

// RestaurantID returns the target restaurant's ID.
func (c AddDishCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Name returns the dish name.
func (c AddDishCommand) Name() string {
	return c.name
}

// Price returns the dish price.
func (c AddDishCommand) Price() kernel.Money {
	return c.price
}

// Dietary returns the dish dietary classification.
func (c AddDishCommand) Dietary() menu.DietaryType {
	return c.dietary
}

// Cuisine returns the dish cuisine.
func (c AddDishCommand) Cuisine() menu.Cuisine {
	return c.cuisine
}

// Course returns the dish course.
func (c AddDishCommand) Course() menu.Course {
	return c.course
}

func (c *AddDishCommand) setOwnerID(ownerID kernel.ID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *AddDishCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *AddDishCommand) setName(name string) error {
	if name == "" {
		return ErrDishNameIsRequired
	}
	c.name = name
	return nil
}

func (c *AddDishCommand) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return ErrDishPriceIsInvalid
	}
	c.price = price
	return nil
}

func (c *AddDishCommand) setAttributes(dietary menu.DietaryType, cuisine menu.Cuisine, course menu.Course) error {
	if err := errors.Join(dietary.Validate(), cuisine.Validate(), course.Validate()); err != nil {
		return err
	}
	c.dietary = dietary
	c.cuisine = cuisine
	c.course = course
	return nil
}
