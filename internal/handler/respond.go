package handler

import (
	"github.com/labstack/echo/v4"

	"covoit/internal/errors"
)

// jsonError converts a service error into the standard envelope,
// logging the cause server-side when it is not a domain error.
func jsonError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.Code == "INTERNAL_ERROR" {
		c.Logger().Error(err)
	}
	return c.JSON(httpErr.StatusCode, errors.Envelope{
		Success:      false,
		ErrorMessage: httpErr.Message,
	})
}
