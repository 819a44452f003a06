package commands_test

import (
	"context"
	"testing"

	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	customer := newCustomer(t)
	rest, dish := newRestaurantWithDish(t)
	orderID := kernel.NewID()

	cmd, err := commands.NewCreateOrderCommand(orderID, customer.ID(), rest.ID(),
		[]commands.OrderItem{{DishID: dish.ID(), Quantity: 2}})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	restRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(userRepo)
	uow.On("RestaurantRepository").Return(restRepo)
	uow.On("OrderRepository").Return(orderRepo)

	var created *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		userRepo.On("Get", ctx, customer.ID()).Return(customer, nil).Once(),
		restRepo.On("Get", ctx, rest.ID()).Return(rest, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, created)
	require.True(t, created.ID().IsEqual(orderID))
	require.Equal(t, "101 Maple St", created.DeliveryAddress())
	require.True(t, created.Subtotal().IsEqual(money(t, "25.00")))
	require.Equal(t, order.Pending, created.Status())
	require.False(t, created.IsPlaced())
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DishNotFound(t *testing.T) {
	ctx := context.Background()
	customer := newCustomer(t)
	rest, _ := newRestaurantWithDish(t)
	unknownDish := kernel.NewID()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewID(), customer.ID(), rest.ID(),
		[]commands.OrderItem{{DishID: unknownDish, Quantity: 1}})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	restRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(userRepo)
	uow.On("RestaurantRepository").Return(restRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		userRepo.On("Get", ctx, customer.ID()).Return(customer, nil).Once(),
		restRepo.On("Get", ctx, rest.ID()).Return(rest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_NotCustomer(t *testing.T) {
	ctx := context.Background()
	owner := newOwner(t)
	rest, dish := newRestaurantWithDish(t)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewID(), owner.ID(), rest.ID(),
		[]commands.OrderItem{{DishID: dish.ID(), Quantity: 1}})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(userRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		userRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrNotCustomer)
}

func TestNewCreateOrderCommand_RequiresItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewID(), kernel.NewID(), kernel.NewID(), nil)
	require.Error(t, err)
}
