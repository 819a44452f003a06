package commands

import (
	"context"
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/core/domain/model/user"
)

// ErrNotRestaurantOwner is returned when the acting account is not a
// restaurant owner, or does not own the targeted restaurant.
var ErrNotRestaurantOwner = errors.New("account does not own this restaurant")

// AddDishCommandHandler handles menu growth: an owner adding a dish to one
// of their restaurants.
type AddDishCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddDishCommandHandler creates a handler for dish additions.
func NewAddDishCommandHandler(uowFactory UoWFactory) AddDishCommandHandler {
	return AddDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-dish command.
// Verifies ownership, builds the dish, and persists the updated menu in one
// transaction.
func (h AddDishCommandHandler) Handle(ctx context.Context, cmd AddDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := verifyOwnership(ctx, uow, cmd.OwnerID(), cmd.RestaurantID()); err != nil {
		return err
	}

	restaurantRepo := uow.RestaurantRepository()
	aggregate, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	dish, err := menu.NewDish(cmd.Name(), cmd.Price(), cmd.Dietary(), cmd.Cuisine(), cmd.Course())
	if err != nil {
		return err
	}

	if err = aggregate.Menu().AddDish(dish); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// verifyOwnership checks that the account exists, is a restaurant owner, and
// owns the restaurant. Shared by the menu-editing handlers.
func verifyOwnership(ctx context.Context, uow UoW, ownerID, restaurantID kernel.ID) error {
	account, err := uow.UserRepository().Get(ctx, ownerID)
	if err != nil {
		return err
	}

	owner, ok := account.(*user.RestaurantOwner)
	if !ok || !owner.OwnsRestaurant(restaurantID) {
		return ErrNotRestaurantOwner
	}

	return nil
}
