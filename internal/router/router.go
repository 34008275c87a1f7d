package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"covoit/internal/auth"
	"covoit/internal/config"
	"covoit/internal/handler"
	"covoit/internal/model"
	"covoit/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	pageHandler *handler.PageHandler,
	trajetHandler *handler.TrajetHandler,
	agenceHandler *handler.AgenceHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public pages
	e.GET("/", pageHandler.Accueil)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/initPassword", authHandler.InitPasswordPage)
	e.POST("/initPassword", authHandler.InitPassword)
	e.GET("/logout", authHandler.Logout)

	// Authenticated pages: failures redirect to the login form.
	pages := e.Group("", auth.PageSession(authService, cfg.CookieSecure))
	pages.GET("/user/menu", pageHandler.UserMenu)
	pages.GET("/admin/menu", pageHandler.AdminMenu, auth.RequireRole(model.RoleAdmin, "/user/menu"))

	// JSON API consumed by the page scripts: failures answer 401.
	apiSession := echojwt.WithConfig(auth.APISessionConfig(authService, cfg.CookieSecure))

	user := e.Group("/user", apiSession)
	user.POST("/trajets", trajetHandler.Create)
	user.POST("/trajets/update", trajetHandler.Update)
	user.DELETE("/trajets", trajetHandler.Delete)
	user.GET("/:idUser", userHandler.GetSummary)

	admin := e.Group("/admin", apiSession, auth.RequireRole(model.RoleAdmin, ""))
	admin.POST("/trajets", trajetHandler.Create)
	admin.POST("/trajets/update", trajetHandler.AdminUpdate)
	admin.DELETE("/trajets", trajetHandler.Delete)
	admin.POST("/agences", agenceHandler.Create)
	admin.POST("/agences/update", agenceHandler.Update)
	admin.POST("/agences/delete", agenceHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
