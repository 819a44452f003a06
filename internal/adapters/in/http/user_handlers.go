package http

import (
	"net/http"

	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/application/usecases/queries"
	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/v1/users - creates an account of any role.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return badRequest(ctx, "invalid role: "+req.Role)
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Password, role,
		req.DeliveryAddress, req.VehicleType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetUserProfile handles GET /api/v1/users/:id - retrieves an account profile.
func (s *Server) GetUserProfile(ctx echo.Context) error {
	userID, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid user id")
	}

	query, err := queries.NewGetUserProfileQuery(userID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	profile, err := s.getUserProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	history := make([]string, 0, len(profile.OrderHistory))
	for _, id := range profile.OrderHistory {
		history = append(history, id.String())
	}

	return ctx.JSON(http.StatusOK, UserProfile{
		ID:           profile.ID.String(),
		Name:         profile.Name,
		Role:         profile.Role,
		Profile:      profile.Profile,
		OrderHistory: history,
	})
}
