package commands

import (
	"errors"

	"foodmate/internal/core/domain/model/user"
	"foodmate/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrUserNameIsRequired        = errors.New("user name is required")
	ErrUserPasswordIsRequired    = errors.New("user password is required")
	ErrUserAddressIsRequired     = errors.New("delivery address is required for customers")
	ErrUserVehicleTypeIsRequired = errors.New("vehicle type is required for delivery partners")
)

// RegisterUserCommand represents a request to create a new account.
// The role decides which extra field is mandatory: customers need a delivery
// address, delivery partners need a vehicle type, restaurant owners need
// neither.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name            string
	password        string
	role            user.Role
	deliveryAddress string
	vehicleType     string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register an account.
// Validates the shared fields and the role-specific requirement.
func NewRegisterUserCommand(name, password string, role user.Role,
	deliveryAddress, vehicleType string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	switch role {
	case user.RoleCustomer:
		if deliveryAddress == "" {
			return RegisterUserCommand{}, ErrUserAddressIsRequired
		}
	case user.RoleDeliveryPartner:
		if vehicleType == "" {
			return RegisterUserCommand{}, ErrUserVehicleTypeIsRequired
		}
	}

	cmd.deliveryAddress = deliveryAddress
	cmd.vehicleType = vehicleType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the display name for the new account.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Password returns the account password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// DeliveryAddress returns the customer delivery address, empty for other roles.
func (c RegisterUserCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// VehicleType returns the partner vehicle type, empty for other roles.
func (c RegisterUserCommand) VehicleType() string {
	return c.vehicleType
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return ErrUserNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrUserPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
