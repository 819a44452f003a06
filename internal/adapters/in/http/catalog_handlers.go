package http

import (
	"net/http"

	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/application/usecases/queries"
	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"

	"github.com/labstack/echo/v4"
)

// GetRestaurants handles GET /api/v1/restaurants - lists the catalog.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	restaurants, err := s.getRestaurantsHandler.Handle(ctx.Request().Context(),
		queries.NewGetRestaurantsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		response = append(response, Restaurant{
			ID:        r.ID.String(),
			Name:      r.Name,
			Cuisine:   r.Cuisine,
			Rating:    r.Rating,
			DishCount: r.DishCount,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// FilterDishes handles GET /api/v1/restaurants/:id/dishes - filters one
// restaurant's menu by the cuisine, course, and dietary query parameters.
// Absent parameters parse to the wildcard and match everything.
func (s *Server) FilterDishes(ctx echo.Context) error {
	restaurantID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	cuisine, err := menu.ParseCuisine(ctx.QueryParam("cuisine"))
	if err != nil {
		return badRequest(ctx, "invalid cuisine: "+ctx.QueryParam("cuisine"))
	}
	course, err := menu.ParseCourse(ctx.QueryParam("course"))
	if err != nil {
		return badRequest(ctx, "invalid course: "+ctx.QueryParam("course"))
	}
	dietary, err := menu.ParseDietaryType(ctx.QueryParam("dietary"))
	if err != nil {
		return badRequest(ctx, "invalid dietary: "+ctx.QueryParam("dietary"))
	}

	query, err := queries.NewFilterDishesQuery(restaurantID, cuisine, course, dietary)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	dishes, err := s.filterDishesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Dish, 0, len(dishes))
	for _, d := range dishes {
		response = append(response, toDish(d))
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddDish handles POST /api/v1/restaurants/:id/dishes - adds a dish to a
// menu on behalf of the owning account.
func (s *Server) AddDish(ctx echo.Context) error {
	restaurantID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	var req AddDishRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	ownerID, err := kernel.IDFromString(req.OwnerID)
	if err != nil {
		return badRequest(ctx, "invalid owner id")
	}
	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "invalid price: "+req.Price)
	}
	dietary, err := menu.ParseDietaryType(req.Dietary)
	if err != nil {
		return badRequest(ctx, "invalid dietary: "+req.Dietary)
	}
	cuisine, err := menu.ParseCuisine(req.Cuisine)
	if err != nil {
		return badRequest(ctx, "invalid cuisine: "+req.Cuisine)
	}
	course, err := menu.ParseCourse(req.Course)
	if err != nil {
		return badRequest(ctx, "invalid course: "+req.Course)
	}

	cmd, err := commands.NewAddDishCommand(ownerID, restaurantID, req.Name, price,
		dietary, cuisine, course)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// RemoveDish handles DELETE /api/v1/restaurants/:id/dishes/:name - removes
// every dish with the given name. The acting owner comes from the owner_id
// query parameter.
func (s *Server) RemoveDish(ctx echo.Context) error {
	restaurantID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	ownerID, err := kernel.IDFromString(ctx.QueryParam("owner_id"))
	if err != nil {
		return badRequest(ctx, "invalid owner id")
	}

	cmd, err := commands.NewRemoveDishCommand(ownerID, restaurantID, ctx.Param("name"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOffers handles GET /api/v1/offers - lists the promotional offers.
func (s *Server) GetOffers(ctx echo.Context) error {
	offers, err := s.getOffersHandler.Handle(ctx.Request().Context(),
		queries.NewGetOffersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Offer, 0, len(offers))
	for _, o := range offers {
		response = append(response, Offer{
			Code:            o.Code,
			Value:           o.Value.String(),
			IsPercentage:    o.IsPercentage,
			MinOrderValue:   o.MinOrderValue.String(),
			RequiresLoyalty: o.RequiresLoyalty,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}
