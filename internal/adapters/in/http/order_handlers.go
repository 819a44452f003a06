package http

import (
	"net/http"

	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/application/usecases/queries"
	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - opens a new pending order.
// The order ID is generated here and returned to the client.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.IDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}
	restaurantID, err := kernel.IDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		dishID, err := kernel.IDFromString(item.DishID)
		if err != nil {
			return badRequest(ctx, "invalid dish id: "+item.DishID)
		}
		items = append(items, commands.OrderItem{DishID: dishID, Quantity: item.Quantity})
	}

	orderID := kernel.NewID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, restaurantID, items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - returns the full order read
// model including pricing and the chat transcript.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(response))
}

// ApplyOffer handles POST /api/v1/orders/:id/offer - applies a promotional
// code. An ineligible offer is a 200 with Applied false and the reason.
func (s *Server) ApplyOffer(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ApplyOfferRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewApplyOfferCommand(orderID, req.Code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.applyOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ApplyOfferResponse{
		Applied:  result.Applied(),
		Discount: result.Discount.String(),
		Reason:   result.Reason.String(),
	})
}

// AddTip handles POST /api/v1/orders/:id/tip - sets the delivery tip.
// Accepted until the order is rated.
func (s *Server) AddTip(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AddTipRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	amount, err := kernel.NewMoneyFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, "invalid amount: "+req.Amount)
	}

	cmd, err := commands.NewAddTipCommand(orderID, amount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addTipHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders/:id/place - checks out a pending
// order. A declined payment maps to 402.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID, req.PaymentMode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceStatus handles POST /api/v1/orders/:id/status - moves a placed
// order to the requested lifecycle status.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AdvanceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	next, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+req.Status)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, next)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RateOrder handles POST /api/v1/orders/:id/rating - rates a delivered
// order, folding the scores into the restaurant and partner averages.
func (s *Server) RateOrder(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req RateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	foodScore, err := kernel.NewStars(req.FoodScore)
	if err != nil {
		return badRequest(ctx, "invalid food score")
	}
	deliveryScore, err := kernel.NewStars(req.DeliveryScore)
	if err != nil {
		return badRequest(ctx, "invalid delivery score")
	}

	cmd, err := commands.NewRateOrderCommand(orderID, foodScore, deliveryScore, req.Feedback)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.rateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
