package auth

import (
	"context"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"covoit/internal/errors"
	"covoit/internal/model"
)

// ContextKey is where the authenticated user is stored on the echo context.
const ContextKey = "user"

// CookieName holds the session credential on the client.
const CookieName = "token"

// SessionVerifier maps a raw cookie value to an account and a renewed
// token. Implemented by service.AuthService.
type SessionVerifier interface {
	VerifyAndRenew(ctx context.Context, raw string) (*model.User, string, error)
}

// SetSessionCookie writes the renewed session credential, httpOnly and
// secure, prefixed the way the source app stores it.
func SetSessionCookie(c echo.Context, token string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    CookiePrefix + token,
		Path:     "/",
		MaxAge:   int(SessionTokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   secure,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// CurrentUser returns the account loaded by the session middleware.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextKey).(*model.User)
	return user
}

// PageSession guards server-rendered routes: a missing or invalid
// credential redirects to the login page instead of failing hard.
// Valid requests get the account on the context and a renewed cookie.
func PageSession(verifier SessionVerifier, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/login")
			}
			user, token, err := verifier.VerifyAndRenew(c.Request().Context(), cookie.Value)
			if err != nil {
				ClearSessionCookie(c)
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set(ContextKey, user)
			SetSessionCookie(c, token, secure)
			return next(c)
		}
	}
}

// APISessionConfig builds the echo-jwt configuration for the JSON API
// groups: the credential is read from the session cookie, verified
// against the account store and renewed; failures answer 401 with the
// standard envelope.
func APISessionConfig(verifier SessionVerifier, secure bool) echojwt.Config {
	return echojwt.Config{
		TokenLookup: "cookie:" + CookieName,
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			user, token, err := verifier.VerifyAndRenew(c.Request().Context(), raw)
			if err != nil {
				return nil, err
			}
			SetSessionCookie(c, token, secure)
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, errors.Envelope{
				Success:      false,
				ErrorMessage: errors.ErrSessionInvalide.Error(),
			})
		},
	}
}

// RequireRole rejects authenticated requests whose account does not
// carry the given role. API routes get a 403 envelope; page routes
// pass a redirect target instead.
func RequireRole(role, redirectTo string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || user.Role != role {
				if redirectTo != "" {
					return c.Redirect(http.StatusFound, redirectTo)
				}
				return c.JSON(http.StatusForbidden, errors.Envelope{
					Success:      false,
					ErrorMessage: "accès refusé",
				})
			}
			return next(c)
		}
	}
}
