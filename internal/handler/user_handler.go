package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"covoit/internal/errors"
	"covoit/internal/service"
)

// UserHandler exposes the read-only account summary consumed by the
// trip detail modal.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetSummary godoc
// @Summary Account summary
// @Tags users
// @Produce json
// @Param idUser path int true "User ID"
// @Success 200 {object} service.UserSummary
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user/{idUser} [get]
func (h *UserHandler) GetSummary(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("idUser"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": errors.ErrUserNotFound.Error()})
	}

	summary, err := h.svc.GetSummary(c.Request().Context(), uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.Code == "INTERNAL_ERROR" {
			c.Logger().Error(err)
		}
		return c.JSON(httpErr.StatusCode, map[string]string{"error": httpErr.Message})
	}

	return c.JSON(http.StatusOK, summary)
}
