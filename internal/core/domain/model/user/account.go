// Package user implements the account sum type of the FoodMate domain:
// Customer, RestaurantOwner, and DeliveryPartner. The three variants share
// identity and authentication through an embedded base and are consumed
// polymorphically through the Account interface.
//
// Cross-entity references (a customer's order history, an owner's
// restaurants) are stored as IDs, never as pointers, and resolved through
// the coordinator's repositories.
package user

import (
	"fmt"
	"strings"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/errs"
)

// Domain errors shared by all account variants.
var (
	// ErrAccountNameIsRequired is returned when creating an account without a name.
	ErrAccountNameIsRequired = errs.NewValueIsRequiredError("account name")
	// ErrPasswordIsRequired is returned when creating an account without a password.
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// Role discriminates the three account variants.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	RoleCustomer
	RoleRestaurantOwner
	RoleDeliveryPartner
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "Unknown",
		RoleCustomer:        "Customer",
		RoleRestaurantOwner: "RestaurantOwner",
		RoleDeliveryPartner: "DeliveryPartner",
	}
}

// Validate checks the role is one of the three variants.
func (r Role) Validate() error {
	if r < RoleCustomer || r > RoleDeliveryPartner {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer. Safe on any value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// ParseRole converts a textual role (case-insensitive) into its enum value.
func ParseRole(s string) (Role, error) {
	for value, name := range getRoleStrings() {
		if value != RoleUnknown && strings.EqualFold(name, s) {
			return value, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Account is the capability set shared by every user variant.
// Implementations are *Customer, *RestaurantOwner, and *DeliveryPartner;
// callers discriminate with Role() and a type switch where variant-specific
// behavior is needed.
type Account interface {
	ID() kernel.ID
	Name() string
	Role() Role

	// Authenticate checks the password and flips the login flag on success.
	Authenticate(password string) bool
	// Logout clears the login flag.
	Logout()
	// IsLoggedIn reports whether the account authenticated in this session.
	IsLoggedIn() bool

	// DescribeProfile renders the variant-specific profile summary.
	DescribeProfile() string

	// Validate ensures the account was created through its constructor.
	Validate() error
}

// identity is the shared base embedded by every account variant.
type identity struct {
	id       kernel.ID
	name     string
	password string
	loggedIn bool
}

func newIdentity(id kernel.ID, name, password string) (identity, error) {
	if err := id.Validate(); err != nil {
		return identity{}, err
	}
	if name == "" {
		return identity{}, ErrAccountNameIsRequired
	}
	if password == "" {
		return identity{}, ErrPasswordIsRequired
	}
	return identity{id: id, name: name, password: password}, nil
}

// ID returns the account identifier.
func (i *identity) ID() kernel.ID {
	return i.id
}

// Name returns the account display name.
func (i *identity) Name() string {
	return i.name
}

// Authenticate compares the password and marks the account logged in on a
// match. Passwords are compared as stored; hashing is outside this scope.
func (i *identity) Authenticate(password string) bool {
	if password != i.password {
		return false
	}
	i.loggedIn = true
	return true
}

// Logout clears the login flag.
func (i *identity) Logout() {
	i.loggedIn = false
}

// IsLoggedIn reports whether the account authenticated in this session.
func (i *identity) IsLoggedIn() bool {
	return i.loggedIn
}

// Password exposes the stored password for persistence adapters.
func (i *identity) Password() string {
	return i.password
}
