package commands

import (
	"context"

	"foodmate/internal/pkg/errs"
)

// RemoveDishCommandHandler handles dish removal from a restaurant menu.
type RemoveDishCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveDishCommandHandler creates a handler for dish removals.
func NewRemoveDishCommandHandler(uowFactory UoWFactory) RemoveDishCommandHandler {
	return RemoveDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-dish command.
// Verifies ownership and removes every dish with the given name; a name that
// matches nothing is a not-found error.
func (h RemoveDishCommandHandler) Handle(ctx context.Context, cmd RemoveDishCommand) error {
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

	if removed := aggregate.Menu().RemoveDishByName(cmd.DishName()); removed == 0 {
		return errs.NewObjectNotFoundError("dish", cmd.DishName())
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
