package commands

import (
	"context"
	"errors"

	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/pkg/errs"
)

// ErrUserNameIsTaken is returned when registering a name that already
// belongs to an account. Names double as login handles, so they are unique.
var ErrUserNameIsTaken = errors.New("user name is already taken")

// RegisterUserCommandHandler handles account creation for all roles.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Rejects duplicate names, builds the role-specific aggregate, and persists
// it within a transaction.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
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

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByName(ctx, cmd.Name())
	if err == nil {
		return ErrUserNameIsTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	account, err := buildAccount(cmd)
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildAccount(cmd RegisterUserCommand) (user.Account, error) {
	switch cmd.Role() {
	case user.RoleCustomer:
		return user.NewCustomer(cmd.Name(), cmd.Password(), cmd.DeliveryAddress())
	case user.RoleRestaurantOwner:
		return user.NewRestaurantOwner(cmd.Name(), cmd.Password())
	case user.RoleDeliveryPartner:
		return user.NewDeliveryPartner(cmd.Name(), cmd.Password(), cmd.VehicleType())
	default:
		return nil, errs.NewValueIsInvalidError("role")
	}
}
