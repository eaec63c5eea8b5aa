package http

import (
	_ "stock-intel/internal/chat/docs"
	"stock-intel/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the chat service router with CORS, recovery, validation and all routes.
func NewRouter(allowOrigins []string, log *logger.Logger, chat *ChatHandler, posts *PostHandler, health *HealthHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()

	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	e.Use(middleware.Recover())
	e.Use(RequestLogger(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{"*"},
	}))

	chat.RegisterRoutes(e)

	apiV1 := e.Group("/api/v1")
	posts.RegisterRoutes(apiV1.Group("/posts"))

	e.GET("/health", health.Health)
	e.GET("/swagger/*", swagger.WrapHandler)

	return e
}
