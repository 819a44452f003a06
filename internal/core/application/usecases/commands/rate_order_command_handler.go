package commands

import (
	"context"
	"errors"

	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/core/domain/services"
)

// ErrNotDeliveryPartner is returned when the account recorded as the
// order's partner is not a delivery partner. Indicates corrupted data.
var ErrNotDeliveryPartner = errors.New("account is not a delivery partner")

// RateOrderCommandHandler handles post-delivery rating: fanning scores out
// to the restaurant, its dishes, and the partner, then marking the order
// rated so the fold runs exactly once.
type RateOrderCommandHandler struct {
	uowFactory UoWFactory
	aggregator services.RatingAggregator
}

// NewRateOrderCommandHandler creates a handler for order rating.
func NewRateOrderCommandHandler(uowFactory UoWFactory, aggregator services.RatingAggregator) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
		aggregator: aggregator,
	}
}

// Handle processes the rate-order command.
// The order must be delivered and not yet rated; every touched aggregate is
// persisted in one transaction.
func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.IsRated() {
		return order.ErrOrderAlreadyRated
	}

	restaurantAggregate, err := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}

	var partner *user.DeliveryPartner
	if aggregate.HasPartner() {
		account, getErr := uow.UserRepository().Get(ctx, aggregate.PartnerID())
		if getErr != nil {
			return getErr
		}
		var ok bool
		if partner, ok = account.(*user.DeliveryPartner); !ok {
			return ErrNotDeliveryPartner
		}
	}

	if err = h.aggregator.Apply(aggregate, restaurantAggregate, partner,
		cmd.FoodScore(), cmd.DeliveryScore(), cmd.Feedback()); err != nil {
		return err
	}

	if err = aggregate.MarkRated(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.RestaurantRepository().Update(ctx, restaurantAggregate); err != nil {
		return err
	}
	if partner != nil {
		if err = uow.UserRepository().Update(ctx, partner); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
