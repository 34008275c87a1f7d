package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"covoit/internal/auth"
	"covoit/internal/errors"
	"covoit/internal/model"
	"covoit/internal/service"
	"covoit/internal/session"
)

// AuthHandler handles the login, logout and password initialization
// flows. These are page flows: failures re-render the form with a
// message instead of returning a bare error code.
type AuthHandler struct {
	authService  service.AuthService
	flash        *session.FlashStore
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, flash *session.FlashStore, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		flash:        flash,
		cookieSecure: cookieSecure,
	}
}

// LoginRequest represents a login form submission.
type LoginRequest struct {
	Mail     string `json:"mail" form:"mail" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// InitPasswordRequest represents a password initialization submission.
type InitPasswordRequest struct {
	Mail     string `json:"mail" form:"mail" validate:"required,email"`
	Nom      string `json:"nom" form:"nom" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginPageData struct {
	SuccessMessage string
	ErrorMessage   string
}

// LoginPage shows the login form. A stale session cookie is cleared,
// and the one-shot success message from the init flow is consumed.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		auth.ClearSessionCookie(c)
	}

	sid := session.SID(c)
	successMessage, _ := h.flash.TakeAndClear(c.Request().Context(), sid, session.KeySuccess)
	return c.Render(http.StatusOK, "login.html", loginPageData{
		SuccessMessage: successMessage,
	})
}

// Login authenticates the submitted credentials, sets the session
// cookie and redirects to the role-specific landing page.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusOK, "login.html", loginPageData{ErrorMessage: errors.ErrDonneesInvalides.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "login.html", loginPageData{ErrorMessage: errors.ErrMailInconnu.Error()})
	}

	token, user, err := h.authService.Authenticate(c.Request().Context(), req.Mail, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.Code == "INTERNAL_ERROR" {
			c.Logger().Error(err)
		}
		return c.Render(http.StatusOK, "login.html", loginPageData{ErrorMessage: httpErr.Message})
	}

	auth.SetSessionCookie(c, token, h.cookieSecure)
	if user.Role == model.RoleAdmin {
		return c.Redirect(http.StatusFound, "/admin/menu")
	}
	return c.Redirect(http.StatusFound, "/user/menu")
}

// InitPasswordPage shows the password initialization form.
func (h *AuthHandler) InitPasswordPage(c echo.Context) error {
	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		auth.ClearSessionCookie(c)
	}
	return c.Render(http.StatusOK, "init_password.html", loginPageData{})
}

// InitPassword sets the password of an account that has none yet,
// then redirects to the login page with a one-shot success message.
func (h *AuthHandler) InitPassword(c echo.Context) error {
	var req InitPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusOK, "init_password.html", loginPageData{ErrorMessage: errors.ErrDonneesInvalides.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "init_password.html", loginPageData{ErrorMessage: errors.ErrDonneesInvalides.Error()})
	}

	err := h.authService.InitializePassword(c.Request().Context(), req.Mail, req.Nom, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		if httpErr.Code == "INTERNAL_ERROR" {
			c.Logger().Error(err)
		}
		// an already-initialized password bounces back to the login form
		if err == errors.ErrPasswordDejaDefini {
			return c.Render(http.StatusOK, "login.html", loginPageData{ErrorMessage: httpErr.Message})
		}
		return c.Render(http.StatusOK, "init_password.html", loginPageData{ErrorMessage: httpErr.Message})
	}

	sid := session.SID(c)
	_ = h.flash.Put(c.Request().Context(), sid, session.KeySuccess, "Mot de passe mis à jour.")
	return c.Redirect(http.StatusFound, "/login")
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	auth.ClearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/login")
}
