package commands_test

import (
	"context"
	"testing"

	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddTipCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	customer := newCustomer(t)
	rest, dish := newRestaurantWithDish(t)
	aggregate := newPendingOrder(t, customer.ID(), rest.ID(), dish)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAddTipCommand(aggregate.ID(), money(t, "2.50"))
	require.NoError(t, err)

	h := commands.NewAddTipCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, aggregate.Tip().IsEqual(money(t, "2.50")))
	require.True(t, aggregate.Total().IsEqual(money(t, "27.50")))
	uow.AssertExpectations(t)
}

func TestAddTipCommandHandler_Handle_TipsDeliveredOrder(t *testing.T) {
	ctx := context.Background()
	customer := newCustomer(t)
	rest, dish := newRestaurantWithDish(t)
	aggregate := newPendingOrder(t, customer.ID(), rest.ID(), dish)
	require.NoError(t, aggregate.Place())
	require.NoError(t, aggregate.AdvanceTo(order.Preparing))
	require.NoError(t, aggregate.AdvanceTo(order.OutForDelivery))
	require.NoError(t, aggregate.AdvanceTo(order.Delivered))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAddTipCommand(aggregate.ID(), money(t, "2.50"))
	require.NoError(t, err)

	h := commands.NewAddTipCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, aggregate.Tip().IsEqual(money(t, "2.50")))
	uow.AssertExpectations(t)
}

func TestAddTipCommandHandler_Handle_RejectedAfterRating(t *testing.T) {
	ctx := context.Background()
	customer := newCustomer(t)
	rest, dish := newRestaurantWithDish(t)
	aggregate := newPendingOrder(t, customer.ID(), rest.ID(), dish)
	require.NoError(t, aggregate.Place())
	require.NoError(t, aggregate.AdvanceTo(order.Preparing))
	require.NoError(t, aggregate.AdvanceTo(order.OutForDelivery))
	require.NoError(t, aggregate.AdvanceTo(order.Delivered))
	require.NoError(t, aggregate.MarkRated())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewAddTipCommand(aggregate.ID(), money(t, "2.50"))
	require.NoError(t, err)

	h := commands.NewAddTipCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrOrderAlreadyRated)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewAddTipCommand_RejectsNegativeAmount(t *testing.T) {
	customer := newCustomer(t)
	rest, dish := newRestaurantWithDish(t)
	aggregate := newPendingOrder(t, customer.ID(), rest.ID(), dish)

	_, err := commands.NewAddTipCommand(aggregate.ID(), money(t, "-1.00"))
	require.Error(t, err)
}
