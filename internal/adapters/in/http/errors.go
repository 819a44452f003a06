package http

import (
	"errors"
	"net/http"

	"foodmate/internal/core/application/usecases/commands"
	"foodmate/internal/core/domain/services"
	"foodmate/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail maps an application error onto the wire.
//
// Not-found lookups are 404, permission failures 403, duplicate names 409,
// a payment decline 402, state-machine violations and validation failures
// 400. Anything unrecognized is a 500 with a generic message so internals
// never leak.
func fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, commands.ErrUserNameIsTaken):
		return http.StatusConflict
	case errors.Is(err, commands.ErrNotRestaurantOwner),
		errors.Is(err, commands.ErrNotCustomer):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrUnknownPaymentMode),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// badRequest reports a malformed or unparseable request body.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
