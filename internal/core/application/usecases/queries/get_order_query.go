package queries

import (
	"errors"
	"time"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its pricing ledger, status, and
// chat log.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch an order by ID.
func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the queried order's ID.
func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// OrderLineResponse represents one frozen order line in the read model.
type OrderLineResponse struct {
	DishID    kernel.ID
	DishName  string
	UnitPrice kernel.Money
	Quantity  int
	Total     kernel.Money
}

// ChatMessageResponse represents one chat entry in the read model.
type ChatMessageResponse struct {
	Sender string
	Text   string
	SentAt time.Time
}

// OrderResponse represents an order in the read model:
// identity, pricing ledger, lifecycle state, and chat.
type OrderResponse struct {
	ID              kernel.ID
	CustomerID      kernel.ID
	RestaurantID    kernel.ID
	PartnerID       kernel.ID
	DeliveryAddress string
	Status          string
	Placed          bool
	Rated           bool
	Lines           []OrderLineResponse
	Subtotal        kernel.Money
	OfferCode       string
	Discount        kernel.Money
	Tip             kernel.Money
	Total           kernel.Money
	Messages        []ChatMessageResponse
}
