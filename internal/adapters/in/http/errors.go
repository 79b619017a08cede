package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fleetops/internal/core/domain/model/purchaseorder"
	"fleetops/internal/pkg/errs"
)

// statusCodeFor maps domain errors to HTTP status codes: invalid input is
// 400, a missing object is 404, a closed order or a lost concurrency race
// is 409, anything else is 500.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, purchaseorder.ErrOrderIsClosed),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse renders a domain error as the uniform error payload.
func errorResponse(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// badRequest renders a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
