package order

import (
	"errors"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/errs"
	"foodmate/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCartIsEmpty is returned when creating an order from a cart with no lines.
	ErrCartIsEmpty = errs.NewValueIsInvalidError("cart must contain at least one item")
	// ErrDeliveryAddressIsRequired is returned when creating an order without a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
	// ErrOrderIsNotPending is returned when mutating pricing on an order that
	// has already been placed.
	ErrOrderIsNotPending = errs.NewValueIsInvalidError("order is no longer pending")
	// ErrOrderAlreadyPlaced is returned when placing an order twice or
	// editing its pricing after placement.
	ErrOrderAlreadyPlaced = errs.NewValueIsInvalidError("order has already been placed")
	// ErrOrderIsNotPlaced is returned when advancing an order that was never
	// placed and paid for.
	ErrOrderIsNotPlaced = errs.NewValueIsInvalidError("order has not been placed")
	// ErrOrderAlreadyRated is returned when rating an order twice.
	ErrOrderAlreadyRated = errs.NewValueIsInvalidError("order has already been rated")
	// ErrOrderIsNotDelivered is returned when rating an order that has not
	// been delivered.
	ErrOrderIsNotDelivered = errs.NewValueIsInvalidError("order has not been delivered")
	// ErrPartnerAlreadyAssigned is returned when assigning a partner to an
	// order that already has one.
	ErrPartnerAlreadyAssigned = errs.NewValueIsInvalidError("order already has a delivery partner")
	// ErrOrderIsCancelled is returned when tipping a cancelled order.
	ErrOrderIsCancelled = errs.NewValueIsInvalidError("order has been cancelled")
	// ErrDiscountIsInvalid is returned when applying a negative discount or
	// one larger than the subtotal.
	ErrDiscountIsInvalid = errs.NewValueIsInvalidError("discount must be between zero and the subtotal")
	// ErrTipIsInvalid is returned when adding a negative tip.
	ErrTipIsInvalid = errs.NewValueIsInvalidError("tip must not be negative")
)

// Order is the aggregate root for a placed food order. It manages the order
// lifecycle from creation through preparation and delivery, the pricing
// ledger, partner assignment, and the per-order chat.
//
// Order follows these invariants:
//   - Lines are frozen snapshots: the subtotal never changes after creation.
//   - Discount is between zero and the subtotal; tip is non-negative; the
//     amount due is subtotal minus discount plus tip and is never negative.
//   - Status transitions follow the state machine in Status. Partner
//     assignment is independent of the status machine: an order can reach
//     Delivered unassigned when the fleet never freed up.
//   - Can only be created through NewOrder or restored via RestoreOrder.
type Order struct {
	id              kernel.ID
	customerID      kernel.ID
	restaurantID    kernel.ID
	deliveryAddress string

	lines    []Line
	subtotal kernel.Money

	offerCode string
	discount  kernel.Money
	tip       kernel.Money

	partnerID kernel.ID
	status    Status
	placed    bool
	rated     bool

	messages []Message

	guard guard.ConstructorGuard
}

// NewOrder freezes the cart into a new Pending order.
//
// The ID is supplied by the caller so the interaction layer can hand it back
// before the order is committed. The delivery address is snapshotted from
// the customer profile at creation time. The cart must contain at least one
// line; its subtotal is computed once and never revised.
func NewOrder(id, customerID, restaurantID kernel.ID, deliveryAddress string, cart *Cart) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}
	if deliveryAddress == "" {
		return nil, ErrDeliveryAddressIsRequired
	}
	if cart == nil || cart.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		restaurantID:    restaurantID,
		deliveryAddress: deliveryAddress,
		lines:           cart.Lines(),
		subtotal:        cart.Subtotal(),
		discount:        kernel.ZeroMoney(),
		tip:             kernel.ZeroMoney(),
		status:          Pending,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rehydrates an order from persistence without re-running
// creation-time rules. The store adapter is trusted to hand back values it
// previously persisted.
func RestoreOrder(id, customerID, restaurantID kernel.ID, deliveryAddress string,
	lines []Line, offerCode string, discount, tip kernel.Money,
	partnerID kernel.ID, status Status, placed, rated bool, messages []Message) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), restaurantID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartIsEmpty
	}

	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(line.Total())
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		restaurantID:    restaurantID,
		deliveryAddress: deliveryAddress,
		lines:           append([]Line(nil), lines...),
		subtotal:        subtotal,
		offerCode:       offerCode,
		discount:        discount,
		tip:             tip,
		partnerID:       partnerID,
		status:          status,
		placed:          placed,
		rated:           rated,
		messages:        append([]Message(nil), messages...),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerID returns the ordering customer's ID.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's ID.
func (o *Order) RestaurantID() kernel.ID {
	return o.restaurantID
}

// DeliveryAddress returns the address snapshot taken at creation.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Lines returns the frozen order lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PartnerID returns the assigned delivery partner's ID, zero when unassigned.
func (o *Order) PartnerID() kernel.ID {
	return o.partnerID
}

// HasPartner reports whether a delivery partner has been assigned.
func (o *Order) HasPartner() bool {
	return !o.partnerID.IsZero()
}

// IsPlaced reports whether the order has been placed and paid for.
func (o *Order) IsPlaced() bool {
	return o.placed
}

// IsRated reports whether the customer already rated the order.
func (o *Order) IsRated() bool {
	return o.rated
}

// Subtotal returns the frozen sum of line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// OfferCode returns the applied offer's code, empty when none was applied.
func (o *Order) OfferCode() string {
	return o.offerCode
}

// Discount returns the discount granted by the applied offer.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Tip returns the delivery tip.
func (o *Order) Tip() kernel.Money {
	return o.tip
}

// Total returns the amount due: subtotal minus discount plus tip.
func (o *Order) Total() kernel.Money {
	return o.subtotal.Sub(o.discount).Add(o.tip)
}

// ApplyOffer records the discount granted by an offer. Re-applying replaces
// the previous offer, last one wins.
//
// Only Pending orders can change their pricing.
func (o *Order) ApplyOffer(code string, discount kernel.Money) error {
	if o.status != Pending {
		return ErrOrderIsNotPending
	}
	if o.placed {
		return ErrOrderAlreadyPlaced
	}
	if code == "" {
		return errs.NewValueIsRequiredError("offer code")
	}
	if discount.IsNegative() || o.subtotal.LessThan(discount) {
		return ErrDiscountIsInvalid
	}

	o.offerCode = code
	o.discount = discount
	return nil
}

// AddTip sets the delivery tip. The interaction layer collects the tip on
// delivery, right before the rating, so the tip may be set or changed at any
// point until the order is rated. Re-tipping replaces the previous amount.
// A cancelled order takes no tip.
func (o *Order) AddTip(tip kernel.Money) error {
	if o.status == Cancelled {
		return ErrOrderIsCancelled
	}
	if o.rated {
		return ErrOrderAlreadyRated
	}
	if tip.IsNegative() {
		return ErrTipIsInvalid
	}

	o.tip = tip
	return nil
}

// AssignPartner attaches a delivery partner to the order.
//
// Assignment is allowed while the order is in flight and has no partner yet.
// Reassignment is not supported: a partner stays with the order until it
// reaches a terminal state.
func (o *Order) AssignPartner(partnerID kernel.ID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if !o.status.IsActive() {
		return errs.NewValueIsInvalidError("cannot assign a partner to a finished order")
	}
	if o.HasPartner() {
		return ErrPartnerAlreadyAssigned
	}

	o.partnerID = partnerID
	return nil
}

// Place marks the order as placed and paid for. Pricing freezes here: the
// charged amount must stay what the customer saw at checkout.
func (o *Order) Place() error {
	if o.status != Pending {
		return ErrOrderIsNotPending
	}
	if o.placed {
		return ErrOrderAlreadyPlaced
	}

	o.placed = true
	return nil
}

// MarkRated records that the customer rated the order, so rating folds run
// exactly once per order.
func (o *Order) MarkRated() error {
	if o.status != Delivered {
		return ErrOrderIsNotDelivered
	}
	if o.rated {
		return ErrOrderAlreadyRated
	}

	o.rated = true
	return nil
}

// AdvanceTo moves the order to the next status.
//
// The transition must be legal per the Status state machine, and an order
// must be placed before it starts preparing. A missing partner does not
// block progress: with the whole fleet busy the order still moves out for
// delivery and on to Delivered, just unassigned. Entering a status with an
// announcement posts an automatic bot message to the chat.
func (o *Order) AdvanceTo(next Status) error {
	if next == Preparing && !o.placed {
		return ErrOrderIsNotPlaced
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if message, ok := announceStatus(newStatus); ok {
		o.messages = append(o.messages, message)
	}
	return nil
}

// Cancel withdraws a Pending order. Once preparation starts, the order runs
// to completion.
func (o *Order) Cancel() error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// PostMessage appends a chat message from the given sender.
func (o *Order) PostMessage(sender, text string) error {
	message, err := NewMessage(sender, text)
	if err != nil {
		return err
	}

	o.messages = append(o.messages, message)
	return nil
}

// Messages returns the chat log in posting order.
func (o *Order) Messages() []Message {
	return append([]Message(nil), o.messages...)
}
