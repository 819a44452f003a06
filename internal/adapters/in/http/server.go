// Package http exposes the FoodMate use cases over a JSON REST API.
// It coordinates between HTTP handlers and application use cases: handlers
// parse and validate the wire representation, build guarded commands and
// queries, and map application errors onto status codes. No domain logic
// lives here.
package http

import (
	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server implements the REST surface for handling HTTP requests.
type Server struct {
	// Command handlers
	registerUserHandler  commands.RegisterUserCommandHandler
	addDishHandler       commands.AddDishCommandHandler
	removeDishHandler    commands.RemoveDishCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	applyOfferHandler    commands.ApplyOfferCommandHandler
	addTipHandler        commands.AddTipCommandHandler
	placeOrderHandler    commands.PlaceOrderCommandHandler
	advanceStatusHandler commands.AdvanceOrderStatusCommandHandler
	rateOrderHandler     commands.RateOrderCommandHandler

	// Query handlers
	filterDishesHandler   queries.FilterDishesQueryHandler
	getRestaurantsHandler queries.GetRestaurantsQueryHandler
	getOffersHandler      queries.GetOffersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getUserProfileHandler queries.GetUserProfileQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	addDishHandler commands.AddDishCommandHandler,
	removeDishHandler commands.RemoveDishCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	applyOfferHandler commands.ApplyOfferCommandHandler,
	addTipHandler commands.AddTipCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	advanceStatusHandler commands.AdvanceOrderStatusCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	filterDishesHandler queries.FilterDishesQueryHandler,
	getRestaurantsHandler queries.GetRestaurantsQueryHandler,
	getOffersHandler queries.GetOffersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserProfileHandler queries.GetUserProfileQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:  registerUserHandler,
		addDishHandler:       addDishHandler,
		removeDishHandler:    removeDishHandler,
		createOrderHandler:   createOrderHandler,
		applyOfferHandler:    applyOfferHandler,
		addTipHandler:        addTipHandler,
		placeOrderHandler:    placeOrderHandler,
		advanceStatusHandler: advanceStatusHandler,
		rateOrderHandler:     rateOrderHandler,

		filterDishesHandler:   filterDishesHandler,
		getRestaurantsHandler: getRestaurantsHandler,
		getOffersHandler:      getOffersHandler,
		getOrderHandler:       getOrderHandler,
		getUserProfileHandler: getUserProfileHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/users", s.RegisterUser)
	v1.GET("/users/:id", s.GetUserProfile)

	v1.GET("/restaurants", s.GetRestaurants)
	v1.GET("/restaurants/:id/dishes", s.FilterDishes)
	v1.POST("/restaurants/:id/dishes", s.AddDish)
	v1.DELETE("/restaurants/:id/dishes/:name", s.RemoveDish)

	v1.GET("/offers", s.GetOffers)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/offer", s.ApplyOffer)
	v1.POST("/orders/:id/tip", s.AddTip)
	v1.POST("/orders/:id/place", s.PlaceOrder)
	v1.POST("/orders/:id/status", s.AdvanceStatus)
	v1.POST("/orders/:id/rating", s.RateOrder)
}
