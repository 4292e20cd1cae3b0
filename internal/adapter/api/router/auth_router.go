package router

import (
	"github.com/labstack/echo/v4"

	"moment/internal/adapter/api/handler"
	"moment/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/auth")

	// Public: registration and secret-gated admin bootstrap.
	auth.POST("/register", authHandler.Register)
	auth.POST("/set-admin/:uid", authHandler.SetAdmin)

	auth.POST("/set-claims/:uid", authHandler.SetClaims, authMiddleware.Authenticate)
}
