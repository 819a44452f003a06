package commands_test

import (
	"context"
	"errors"
	"testing"

	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterUserCommand("Alice", "secret", user.RoleCustomer,
		"101 Maple St", "")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("GetByName", ctx, "Alice").
			Return(nil, errs.NewObjectNotFoundError("user", "Alice")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*user.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterUserCommand("Alice", "secret", user.RoleCustomer,
		"101 Maple St", "")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("GetByName", ctx, "Alice").Return(newCustomer(t), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrUserNameIsTaken)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.RegisterUserCommand{} // not constructed properly
	factory := new(MockUserUoWFactory)
	h := commands.NewRegisterUserCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestRegisterUserCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRegisterUserCommand("Dan", "secret", user.RoleDeliveryPartner,
		"", "Bike")
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUserUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewRegisterUserCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestNewRegisterUserCommand_RoleRequirements(t *testing.T) {
	_, err := commands.NewRegisterUserCommand("Alice", "secret", user.RoleCustomer, "", "")
	require.ErrorIs(t, err, commands.ErrUserAddressIsRequired)

	_, err = commands.NewRegisterUserCommand("Dan", "secret", user.RoleDeliveryPartner, "", "")
	require.ErrorIs(t, err, commands.ErrUserVehicleTypeIsRequired)

	_, err = commands.NewRegisterUserCommand("ChefBob", "secret", user.RoleRestaurantOwner, "", "")
	require.NoError(t, err)
}
