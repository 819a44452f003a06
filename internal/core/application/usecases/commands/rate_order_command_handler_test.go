package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/domain/model/restaurant"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietAggregator() services.RatingAggregator {
	return services.NewRatingAggregator(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func deliveredFixture(t *testing.T) (*order.Order, *restaurant.Restaurant, *user.DeliveryPartner) {
	t.Helper()
	customer := newCustomer(t)
	rest, dish := newRestaurantWithDish(t)
	partner := newPartner(t)

	aggregate := newPendingOrder(t, customer.ID(), rest.ID(), dish)
	require.NoError(t, aggregate.AddTip(money(t, "2.00")))
	require.NoError(t, aggregate.Place())
	require.NoError(t, aggregate.AssignPartner(partner.ID()))
	require.NoError(t, partner.StartDelivery())
	require.NoError(t, aggregate.AdvanceTo(order.Preparing))
	require.NoError(t, aggregate.AdvanceTo(order.OutForDelivery))
	require.NoError(t, aggregate.AdvanceTo(order.Delivered))
	return aggregate, rest, partner
}

func TestRateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	aggregate, rest, partner := deliveredFixture(t)

	orderRepo := new(MockOrderRepository)
	restRepo := new(MockRestaurantRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("RestaurantRepository").Return(restRepo)
	uow.On("UserRepository").Return(userRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		restRepo.On("Get", ctx, rest.ID()).Return(rest, nil).Once(),
		userRepo.On("Get", ctx, partner.ID()).Return(partner, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		restRepo.On("Update", ctx, rest).Return(nil).Once(),
		userRepo.On("Update", ctx, partner).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRateOrderCommand(aggregate.ID(), stars(t, 5), stars(t, 4), "great")
	require.NoError(t, err)

	h := commands.NewRateOrderCommandHandler(factory, quietAggregator())
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, aggregate.IsRated())
	// restaurant started at 4.5 with one rating; folding a 5 gives 4.75
	require.InDelta(t, 4.75, rest.Rating().Average(), 0.0001)
	// partner settles with the tip and becomes available again
	require.True(t, partner.Earnings().IsEqual(money(t, "2.00")))
	require.True(t, partner.IsAvailable())
	require.InDelta(t, 4.5, partner.Rating().Average(), 0.0001)
	uow.AssertExpectations(t)
}

func TestRateOrderCommandHandler_Handle_AlreadyRated(t *testing.T) {
	ctx := context.Background()
	aggregate, _, _ := deliveredFixture(t)
	require.NoError(t, aggregate.MarkRated())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRateOrderCommand(aggregate.ID(), stars(t, 5), stars(t, 4), "")
	require.NoError(t, err)

	h := commands.NewRateOrderCommandHandler(factory, quietAggregator())
	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrOrderAlreadyRated)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRateOrderCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := context.Background()
	customer := newCustomer(t)
	rest, dish := newRestaurantWithDish(t)
	aggregate := newPendingOrder(t, customer.ID(), rest.ID(), dish)

	orderRepo := new(MockOrderRepository)
	restRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("RestaurantRepository").Return(restRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		restRepo.On("Get", ctx, rest.ID()).Return(rest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRateOrderCommand(aggregate.ID(), stars(t, 5), stars(t, 4), "")
	require.NoError(t, err)

	h := commands.NewRateOrderCommandHandler(factory, quietAggregator())
	require.ErrorIs(t, h.Handle(ctx, cmd), services.ErrOrderIsNotDelivered)
	require.False(t, aggregate.IsRated())
}
