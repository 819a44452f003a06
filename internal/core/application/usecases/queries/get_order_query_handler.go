package queries

import (
	"context"

	"foodmate/internal/core/domain/model/order"
	"foodmate/internal/core/ports"
)

// GetOrderQueryHandler retrieves one order as a read model.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrderQueryHandler creates a handler for order lookups.
func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle executes the order lookup. An unknown ID is a not-found error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return toOrderResponse(aggregate), nil
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	lines := aggregate.Lines()
	lineResponses := make([]OrderLineResponse, 0, len(lines))
	for _, line := range lines {
		lineResponses = append(lineResponses, OrderLineResponse{
			DishID:    line.DishID(),
			DishName:  line.DishName(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
			Total:     line.Total(),
		})
	}

	messages := aggregate.Messages()
	messageResponses := make([]ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		messageResponses = append(messageResponses, ChatMessageResponse{
			Sender: m.Sender(),
			Text:   m.Text(),
			SentAt: m.SentAt(),
		})
	}

	return OrderResponse{
		ID:              aggregate.ID(),
		CustomerID:      aggregate.CustomerID(),
		RestaurantID:    aggregate.RestaurantID(),
		PartnerID:       aggregate.PartnerID(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Status:          aggregate.Status().String(),
		Placed:          aggregate.IsPlaced(),
		Rated:           aggregate.IsRated(),
		Lines:           lineResponses,
		Subtotal:        aggregate.Subtotal(),
		OfferCode:       aggregate.OfferCode(),
		Discount:        aggregate.Discount(),
		Tip:             aggregate.Tip(),
		Total:           aggregate.Total(),
		Messages:        messageResponses,
	}
}
