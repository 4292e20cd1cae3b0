package router

import (
	"github.com/labstack/echo/v4"

	"moment/internal/adapter/api/handler"
	"moment/internal/adapter/api/middleware"
)

func SetupProviderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	providerHandler := handler.GetProviderHandler()

	providers := e.Group("/providers")

	// Public browse surface.
	providers.GET("", providerHandler.ListProviders)
	providers.GET("/:id", providerHandler.GetProvider)

	providers.GET("/user/:uid", providerHandler.GetProviderByUser, authMiddleware.Authenticate)
	providers.POST("", providerHandler.CreateProvider, authMiddleware.Authenticate)
	providers.PUT("/:id", providerHandler.UpdateProvider, authMiddleware.Authenticate)
	providers.PATCH("/:id/status", providerHandler.UpdateProviderStatus, authMiddleware.Authenticate)
	providers.PATCH("/:id/publish", providerHandler.SetProviderPublished, authMiddleware.Authenticate)
	providers.DELETE("/:id", providerHandler.DeleteProvider, authMiddleware.Authenticate)
}
