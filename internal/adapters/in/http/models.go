package http

import (
	"time"

	"foodmate/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterUserRequest carries an account registration.
// Role is one of Customer, RestaurantOwner, DeliveryPartner; the
// role-specific field (delivery address, vehicle type) must be set
// accordingly.
type RegisterUserRequest struct {
	Name            string `json:"name"`
	Password        string `json:"password"`
	Role            string `json:"role"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	VehicleType     string `json:"vehicle_type,omitempty"`
}

// AddDishRequest carries a new dish for a restaurant menu.
type AddDishRequest struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Dietary string `json:"dietary"`
	Cuisine string `json:"cuisine"`
	Course  string `json:"course"`
}

// CreateOrderRequest opens a new order for a customer at a restaurant.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customer_id"`
	RestaurantID string             `json:"restaurant_id"`
	Items        []OrderItemRequest `json:"items"`
}

// OrderItemRequest picks a quantity of one dish.
type OrderItemRequest struct {
	DishID   string `json:"dish_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderResponse returns the identifier of the opened order.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// ApplyOfferRequest applies a promotional code to a pending order.
type ApplyOfferRequest struct {
	Code string `json:"code"`
}

// ApplyOfferResponse reports the outcome of an offer application.
// An ineligible offer is a 200 with Applied false and the reason.
type ApplyOfferResponse struct {
	Applied  bool   `json:"applied"`
	Discount string `json:"discount"`
	Reason   string `json:"reason"`
}

// AddTipRequest sets the delivery tip on an order.
type AddTipRequest struct {
	Amount string `json:"amount"`
}

// PlaceOrderRequest checks out a pending order with a payment mode.
type PlaceOrderRequest struct {
	PaymentMode string `json:"payment_mode"`
}

// AdvanceStatusRequest moves an order to its next lifecycle status.
type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

// RateOrderRequest rates a delivered order.
type RateOrderRequest struct {
	FoodScore     int    `json:"food_score"`
	DeliveryScore int    `json:"delivery_score"`
	Feedback      string `json:"feedback,omitempty"`
}

// Dish is the wire form of a menu dish.
type Dish struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Dietary string `json:"dietary"`
	Cuisine string `json:"cuisine"`
	Course  string `json:"course"`
	Rating  string `json:"rating"`
}

// Restaurant is the wire form of a catalog entry.
type Restaurant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Cuisine   string `json:"cuisine"`
	Rating    string `json:"rating"`
	DishCount int    `json:"dish_count"`
}

// Offer is the wire form of a promotional offer.
type Offer struct {
	Code            string `json:"code"`
	Value           string `json:"value"`
	IsPercentage    bool   `json:"is_percentage"`
	MinOrderValue   string `json:"min_order_value"`
	RequiresLoyalty bool   `json:"requires_loyalty"`
}

// OrderLine is the wire form of one frozen order line.
type OrderLine struct {
	DishID    string `json:"dish_id"`
	DishName  string `json:"dish_name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}

// ChatMessage is the wire form of one order chat entry.
type ChatMessage struct {
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// Order is the wire form of a full order read model.
type Order struct {
	ID              string        `json:"id"`
	CustomerID      string        `json:"customer_id"`
	RestaurantID    string        `json:"restaurant_id"`
	PartnerID       string        `json:"partner_id,omitempty"`
	DeliveryAddress string        `json:"delivery_address"`
	Status          string        `json:"status"`
	Placed          bool          `json:"placed"`
	Rated           bool          `json:"rated"`
	Lines           []OrderLine   `json:"lines"`
	Subtotal        string        `json:"subtotal"`
	OfferCode       string        `json:"offer_code,omitempty"`
	Discount        string        `json:"discount"`
	Tip             string        `json:"tip"`
	Total           string        `json:"total"`
	Messages        []ChatMessage `json:"messages"`
}

// UserProfile is the wire form of an account profile.
type UserProfile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Profile      string   `json:"profile"`
	OrderHistory []string `json:"order_history,omitempty"`
}

func toDish(d queries.DishResponse) Dish {
	return Dish{
		ID:      d.ID.String(),
		Name:    d.Name,
		Price:   d.Price.String(),
		Dietary: d.Dietary,
		Cuisine: d.Cuisine,
		Course:  d.Course,
		Rating:  d.Rating,
	}
}

func toOrder(o queries.OrderResponse) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLine{
			DishID:    l.DishID.String(),
			DishName:  l.DishName,
			UnitPrice: l.UnitPrice.String(),
			Quantity:  l.Quantity,
			Total:     l.Total.String(),
		})
	}

	messages := make([]ChatMessage, 0, len(o.Messages))
	for _, m := range o.Messages {
		messages = append(messages, ChatMessage{
			Sender: m.Sender,
			Text:   m.Text,
			SentAt: m.SentAt,
		})
	}

	partnerID := ""
	if !o.PartnerID.IsZero() {
		partnerID = o.PartnerID.String()
	}

	return Order{
		ID:              o.ID.String(),
		CustomerID:      o.CustomerID.String(),
		RestaurantID:    o.RestaurantID.String(),
		PartnerID:       partnerID,
		DeliveryAddress: o.DeliveryAddress,
		Status:          o.Status,
		Placed:          o.Placed,
		Rated:           o.Rated,
		Lines:           lines,
		Subtotal:        o.Subtotal.String(),
		OfferCode:       o.OfferCode,
		Discount:        o.Discount.String(),
		Tip:             o.Tip.String(),
		Total:           o.Total.String(),
		Messages:        messages,
	}
}
