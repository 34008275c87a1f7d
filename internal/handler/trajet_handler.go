package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"covoit/internal/errors"
	"covoit/internal/service"
)

// TrajetHandler handles the trip JSON endpoints for both roles; the
// role only changes the update allow-list passed to the service.
type TrajetHandler struct {
	svc service.TrajetService
}

// NewTrajetHandler creates a new trip handler.
func NewTrajetHandler(svc service.TrajetService) *TrajetHandler {
	return &TrajetHandler{svc: svc}
}

// TrajetRequest carries the form values of a trip mutation. All
// values arrive as strings from the page scripts; blanks mean
// "unchanged" on update.
type TrajetRequest struct {
	IDTrajet        string `json:"id_trajet" form:"id_trajet"`
	IDUser          string `json:"id_user" form:"id_user"`
	IDAgenceDepart  string `json:"id_agence_depart" form:"id_agence_depart"`
	IDAgenceArrivee string `json:"id_agence_arrivee" form:"id_agence_arrivee"`
	DateDepart      string `json:"date_depart" form:"date_depart"`
	HeureDepart     string `json:"heure_depart" form:"heure_depart"`
	DateArrivee     string `json:"date_arrivee" form:"date_arrivee"`
	HeureArrivee    string `json:"heure_arrivee" form:"heure_arrivee"`
	Place           string `json:"place" form:"place"`
}

// Create godoc
// @Summary Create a trip
// @Tags trajets
// @Accept json
// @Produce json
// @Param request body TrajetRequest true "Trip fields"
// @Success 201 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /user/trajets [post]
func (h *TrajetHandler) Create(c echo.Context) error {
	var req TrajetRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, errors.ErrDonneesInvalides)
	}

	trajet, confirmation, err := h.svc.Create(c.Request().Context(), service.CreateTrajetInput{
		IDUser:          req.IDUser,
		IDAgenceDepart:  req.IDAgenceDepart,
		IDAgenceArrivee: req.IDAgenceArrivee,
		DateDepart:      req.DateDepart,
		HeureDepart:     req.HeureDepart,
		DateArrivee:     req.DateArrivee,
		HeureArrivee:    req.HeureArrivee,
		Place:           req.Place,
	})
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusCreated, errors.Envelope{
		Success:        true,
		SuccessMessage: confirmation,
		IDTrajet:       trajet.ID,
	})
}

// update runs the shared partial-update flow with the caller's
// allow-list.
func (h *TrajetHandler) update(c echo.Context, allowed service.FieldSet) error {
	var req TrajetRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, errors.ErrDonneesInvalides)
	}

	confirmation, err := h.svc.Update(c.Request().Context(), req.IDTrajet, service.TrajetUpdate{
		IDUser:          req.IDUser,
		IDAgenceDepart:  req.IDAgenceDepart,
		IDAgenceArrivee: req.IDAgenceArrivee,
		DateDepart:      req.DateDepart,
		HeureDepart:     req.HeureDepart,
		DateArrivee:     req.DateArrivee,
		HeureArrivee:    req.HeureArrivee,
		Place:           req.Place,
	}, allowed)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, errors.Envelope{
		Success:        true,
		SuccessMessage: confirmation,
	})
}

// Update godoc
// @Summary Update a trip (user fields)
// @Tags trajets
// @Accept json
// @Produce json
// @Param request body TrajetRequest true "Trip id plus any subset of fields"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /user/trajets/update [post]
func (h *TrajetHandler) Update(c echo.Context) error {
	return h.update(c, service.UserFields())
}

// AdminUpdate godoc
// @Summary Update a trip (admin, may reassign the author)
// @Tags trajets
// @Accept json
// @Produce json
// @Param request body TrajetRequest true "Trip id plus any subset of fields"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /admin/trajets/update [post]
func (h *TrajetHandler) AdminUpdate(c echo.Context) error {
	return h.update(c, service.AdminFields())
}

// Delete godoc
// @Summary Delete a trip
// @Tags trajets
// @Accept json
// @Produce json
// @Param request body TrajetRequest true "Trip id"
// @Success 200 {object} errors.Envelope
// @Failure 400 {object} errors.Envelope
// @Failure 404 {object} errors.Envelope
// @Failure 500 {object} errors.Envelope
// @Router /user/trajets [delete]
func (h *TrajetHandler) Delete(c echo.Context) error {
	var req TrajetRequest
	if err := c.Bind(&req); err != nil {
		return jsonError(c, errors.ErrIDTrajetManquant)
	}

	confirmation, redirectURL, err := h.svc.Delete(c.Request().Context(), req.IDTrajet)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, errors.Envelope{
		Success:        true,
		SuccessMessage: confirmation,
		RedirectURL:    redirectURL,
	})
}
