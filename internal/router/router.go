package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pasko-evg/superlists/internal/auth"
	"github.com/pasko-evg/superlists/internal/config"
	"github.com/pasko-evg/superlists/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessionStore auth.SessionStoreInterface,
	listHandler *handler.ListHandler,
	authHandler *handler.AuthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Session resolution is best-effort: every page works anonymously.
	e.Use(auth.SessionParser(cfg.SessionSecret))
	e.Use(auth.CurrentUser(sessionStore))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/", listHandler.Home)

	e.POST("/lists/new", listHandler.CreateList)
	e.GET("/lists/:id/", listHandler.ViewList)
	e.POST("/lists/:id/", listHandler.AddItem)
	e.GET("/lists/users/:email/", listHandler.MyLists)

	e.POST("/accounts/send_login_email", authHandler.SendLoginEmail)
	e.GET("/accounts/login", authHandler.Login)
	e.POST("/accounts/logout", authHandler.Logout)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
