package user

import (
	"errors"
	"fmt"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/errs"
	"foodmate/internal/pkg/guard"
)

const (
	// partnerSeedAverage is the rating a new delivery partner starts with.
	partnerSeedAverage = 5.0
	// partnerSeedCount weights the seed as a single vote.
	partnerSeedCount = 1
)

// Domain errors for delivery-partner operations.
var (
	// ErrVehicleTypeIsRequired is returned when creating a partner without a vehicle.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicle type")
	// ErrPartnerIsNotAvailable is returned when starting a delivery while one is in flight.
	ErrPartnerIsNotAvailable = errors.New("delivery partner is already on a delivery")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner constructor")
)

// DeliveryPartner is the fulfillment variant of Account.
//
// Invariant: a partner is available XOR assigned to exactly one in-flight
// order. StartDelivery and CompleteDelivery are the only operations that
// flip the flag, and StartDelivery refuses to double-book.
//
// The running rating seeds at 5.0 with a count of one.
type DeliveryPartner struct {
	identity

	vehicleType string
	earnings    kernel.Money
	rating      kernel.RunningAverage
	available   bool

	guard guard.ConstructorGuard
}

// NewDeliveryPartner creates a partner with a generated ID, zero earnings,
// the seeded rating, and availability on.
func NewDeliveryPartner(name, password, vehicleType string) (*DeliveryPartner, error) {
	rating, err := kernel.NewRunningAverage(partnerSeedAverage, partnerSeedCount)
	if err != nil {
		return nil, err
	}
	return RestoreDeliveryPartner(kernel.NewID(), name, password, vehicleType, kernel.ZeroMoney(), rating, true)
}

// RestoreDeliveryPartner reconstructs a partner from persisted state.
// Used by storage adapters.
func RestoreDeliveryPartner(
	id kernel.ID,
	name, password, vehicleType string,
	earnings kernel.Money,
	rating kernel.RunningAverage,
	available bool,
) (*DeliveryPartner, error) {
	base, err := newIdentity(id, name, password)
	if err != nil {
		return nil, err
	}
	if vehicleType == "" {
		return nil, ErrVehicleTypeIsRequired
	}

	return &DeliveryPartner{
		identity:    base,
		vehicleType: vehicleType,
		earnings:    earnings,
		rating:      rating,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the partner was created through a constructor.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// Role returns RoleDeliveryPartner.
func (p *DeliveryPartner) Role() Role {
	return RoleDeliveryPartner
}

// VehicleType returns the partner's vehicle description.
func (p *DeliveryPartner) VehicleType() string {
	return p.vehicleType
}

// Earnings returns the cumulative tip earnings.
func (p *DeliveryPartner) Earnings() kernel.Money {
	return p.earnings
}

// Rating returns the running average of delivery scores.
func (p *DeliveryPartner) Rating() kernel.RunningAverage {
	return p.rating
}

// IsAvailable reports whether the partner can take a new order.
func (p *DeliveryPartner) IsAvailable() bool {
	return p.available
}

// StartDelivery marks the partner as assigned to an in-flight order.
// Fails with ErrPartnerIsNotAvailable when a delivery is already in flight,
// preserving the available-XOR-assigned invariant.
func (p *DeliveryPartner) StartDelivery() error {
	if !p.available {
		return ErrPartnerIsNotAvailable
	}
	p.available = false
	return nil
}

// CompleteDelivery settles an in-flight delivery: credits the tip to the
// partner's earnings, folds the delivery score into the running average,
// and flips the partner back to available.
func (p *DeliveryPartner) CompleteDelivery(tip kernel.Money, score kernel.Stars) error {
	if tip.IsNegative() {
		return errs.NewValueIsInvalidError("tip must not be negative")
	}

	folded, err := p.rating.Fold(score)
	if err != nil {
		return err
	}

	p.earnings = p.earnings.Add(tip)
	p.rating = folded
	p.available = true
	return nil
}

// DescribeProfile renders the partner profile summary.
func (p *DeliveryPartner) DescribeProfile() string {
	status := "Available"
	if !p.available {
		status = "On Delivery"
	}
	return fmt.Sprintf("Delivery Partner %s (%s) | Vehicle: %s | Earnings: %s | Rating: %s | Status: %s",
		p.Name(), p.ID(), p.vehicleType, p.earnings, p.rating, status)
}
