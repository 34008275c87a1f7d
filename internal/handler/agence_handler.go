package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"covoit/internal/errors"
	"covoit/internal/service"
)

// AgenceHandler handles the admin agency endpoints.
type AgenceHandler struct {
	svc service.AgenceService
}

// NewAgenceHandler creates a new agency handler.
func NewAgenceHandler(svc service.AgenceService) *AgenceHandler {
	return &AgenceHandler{svc: svc}
}

// AgenceRequest carries the form values of an agency mutation.
type AgenceRequest struct {
	IDAgence string `json:"id_agence" form:"id_agence"`
	Agence   string `json:"agence" form:"agence"`
}

// Create godoc
// @Summary Create an agency
// @Tags agences
// @Accept json
// @Produce json
// @Param request body AgenceRequest true "Agency name"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /admin/agences [post]
func (h *AgenceHandler) Create(c echo.Context) error {
	var req AgenceRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, errors.ErrNomAgenceRequis)
	}

	agence, confirmation, err := h.svc.Create(c.Request().Context(), req.Agence)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, errors.Envelope{
		Success:        true,
		SuccessMessage: confirmation,
		IDAgence:       agence.ID,
	})
}

// Update godoc
// @Summary Rename an agency
// @Tags agences
// @Accept json
// @Produce json
// @Param request body AgenceRequest true "Agency id and new name"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /admin/agences/update [post]
func (h *AgenceHandler) Update(c echo.Context) error {
	var req AgenceRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, errors.ErrDonneesInvalides)
	}

	confirmation, err := h.svc.Update(c.Request().Context(), req.IDAgence, req.Agence)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, errors.Envelope{
		Success:        true,
		SuccessMessage: confirmation,
	})
}

// Delete godoc
// @Summary Delete an agency
// @Tags agences
// @Accept json
// @Produce json
// @Param request body AgenceRequest true "Agency id"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /admin/agences/delete [post]
func (h *AgenceHandler) Delete(c echo.Context) error {
	var req AgenceRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, errors.ErrDonneesInvalides)
	}

	confirmation, err := h.svc.Delete(c.Request().Context(), req.IDAgence)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, errors.Envelope{
		Success:        true,
		SuccessMessage: confirmation,
	})
}
