package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"covoit/internal/auth"
	"covoit/internal/model"
	"covoit/internal/service"
	"covoit/internal/session"
)

// PageHandler renders the server-side pages: the public trip list and
// the role-specific menus.
type PageHandler struct {
	trajetService service.TrajetService
	agenceService service.AgenceService
	userService   service.UserService
	flash         *session.FlashStore
}

// NewPageHandler creates a new page handler.
func NewPageHandler(
	trajetService service.TrajetService,
	agenceService service.AgenceService,
	userService service.UserService,
	flash *session.FlashStore,
) *PageHandler {
	return &PageHandler{
		trajetService: trajetService,
		agenceService: agenceService,
		userService:   userService,
		flash:         flash,
	}
}

type menuPageData struct {
	User           *model.User
	Trajets        []model.Trajet
	Agences        []model.Agence
	Users          []model.User
	SuccessMessage string
	ErrorMessage   string
}

// Accueil renders the public landing page with every trip.
func (h *PageHandler) Accueil(c echo.Context) error {
	trajets, err := h.trajetService.ListAll(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return c.String(http.StatusInternalServerError, "Erreur serveur")
	}
	return c.Render(http.StatusOK, "accueil.html", menuPageData{Trajets: trajets})
}

// UserMenu renders the authenticated user's menu: upcoming trips and
// the agency list for the forms, plus any one-shot messages.
func (h *PageHandler) UserMenu(c echo.Context) error {
	return h.menu(c, "user_menu.html", false)
}

// AdminMenu renders the admin menu, which additionally lists accounts.
func (h *PageHandler) AdminMenu(c echo.Context) error {
	return h.menu(c, "admin_menu.html", true)
}

func (h *PageHandler) menu(c echo.Context, template string, withUsers bool) error {
	ctx := c.Request().Context()

	sid := session.SID(c)
	successMessage, _ := h.flash.TakeAndClear(ctx, sid, session.KeySuccess)
	errorMessage, _ := h.flash.TakeAndClear(ctx, sid, session.KeyError)

	trajets, err := h.trajetService.ListUpcoming(ctx)
	if err != nil {
		c.Logger().Error(err)
		return c.String(http.StatusInternalServerError, "Erreur serveur")
	}
	agences, err := h.agenceService.List(ctx)
	if err != nil {
		c.Logger().Error(err)
		return c.String(http.StatusInternalServerError, "Erreur serveur")
	}

	data := menuPageData{
		User:           auth.CurrentUser(c),
		Trajets:        trajets,
		Agences:        agences,
		SuccessMessage: successMessage,
		ErrorMessage:   errorMessage,
	}
	if withUsers {
		users, err := h.userService.List(ctx)
		if err != nil {
			c.Logger().Error(err)
			return c.String(http.StatusInternalServerError, "Erreur serveur")
		}
		data.Users = users
	}
	return c.Render(http.StatusOK, template, data)
}
