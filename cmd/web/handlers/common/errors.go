package common

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrBadRequest returns a 400 Bad Request error.
func ErrBadRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// ErrNotFound returns a 404 Not Found error.
func ErrNotFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}

// ErrInternal returns a 500 Internal Server Error.
func ErrInternal(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}

// ErrBadGateway returns a 502 Bad Gateway error for upstream failures.
func ErrBadGateway(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadGateway, msg)
}

// ErrUnavailable returns a 503 Service Unavailable error.
func ErrUnavailable(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusServiceUnavailable, msg)
}

// IsValidation reports whether err carries struct validation failures.
func IsValidation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// ValidationMessage lists the failing fields of a validation error, e.g.
// "invalid days (max), rank_by (oneof)".
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msg := "invalid "
	for i, fe := range verrs {
		if i > 0 {
			msg += ", "
		}
		msg += fe.Field() + " (" + fe.Tag() + ")"
	}
	return msg
}
