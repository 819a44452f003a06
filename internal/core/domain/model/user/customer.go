package user

import (
	"errors"
	"fmt"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/errs"
	"foodmate/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrDeliveryAddressIsRequired is returned when creating a customer without an address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrLoyaltyPointsAreInvalid is returned when accruing negative loyalty points.
	ErrLoyaltyPointsAreInvalid = errs.NewValueIsInvalidError("loyalty points must not be negative")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is the ordering variant of Account. It carries the delivery
// address, the loyalty-point balance, and the list of completed orders as
// ID references into the coordinator's completed set.
//
// Loyalty points accrue at 5% of an order's final amount when it is
// delivered; the balance gates loyalty-tier offers.
type Customer struct {
	identity

	deliveryAddress string
	loyaltyPoints   kernel.Money
	orderHistory    []kernel.ID

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with a generated ID, zero loyalty points,
// and an empty order history.
func NewCustomer(name, password, deliveryAddress string) (*Customer, error) {
	return RestoreCustomer(kernel.NewID(), name, password, deliveryAddress, kernel.ZeroMoney(), nil)
}

// RestoreCustomer reconstructs a customer from persisted state.
// Used by storage adapters.
func RestoreCustomer(
	id kernel.ID,
	name, password, deliveryAddress string,
	loyaltyPoints kernel.Money,
	orderHistory []kernel.ID,
) (*Customer, error) {
	base, err := newIdentity(id, name, password)
	if err != nil {
		return nil, err
	}
	if deliveryAddress == "" {
		return nil, ErrDeliveryAddressIsRequired
	}
	if loyaltyPoints.IsNegative() {
		return nil, ErrLoyaltyPointsAreInvalid
	}

	history := make([]kernel.ID, len(orderHistory))
	copy(history, orderHistory)

	return &Customer{
		identity:        base,
		deliveryAddress: deliveryAddress,
		loyaltyPoints:   loyaltyPoints,
		orderHistory:    history,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Role returns RoleCustomer.
func (c *Customer) Role() Role {
	return RoleCustomer
}

// DeliveryAddress returns the customer's delivery address.
func (c *Customer) DeliveryAddress() string {
	return c.deliveryAddress
}

// LoyaltyPoints returns the current loyalty-point balance.
func (c *Customer) LoyaltyPoints() kernel.Money {
	return c.loyaltyPoints
}

// AddLoyaltyPoints credits points to the balance. Points are never
// deducted, so negative amounts are rejected.
func (c *Customer) AddLoyaltyPoints(points kernel.Money) error {
	if points.IsNegative() {
		return ErrLoyaltyPointsAreInvalid
	}
	c.loyaltyPoints = c.loyaltyPoints.Add(points)
	return nil
}

// OrderHistory returns the IDs of the customer's completed orders.
// The returned slice is a copy to prevent external modification.
func (c *Customer) OrderHistory() []kernel.ID {
	out := make([]kernel.ID, len(c.orderHistory))
	copy(out, c.orderHistory)
	return out
}

// AppendOrderHistory records a delivered order. The coordinator calls this
// exactly once per order, when the order reaches its Delivered state.
func (c *Customer) AppendOrderHistory(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderHistory = append(c.orderHistory, orderID)
	return nil
}

// DescribeProfile renders the customer profile summary.
func (c *Customer) DescribeProfile() string {
	return fmt.Sprintf("Customer %s (%s) | Address: %s | Loyalty Points: %s | Past Orders: %d",
		c.Name(), c.ID(), c.deliveryAddress, c.loyaltyPoints, len(c.orderHistory))
}
