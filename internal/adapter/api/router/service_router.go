package router

import (
	"github.com/labstack/echo/v4"

	"moment/internal/adapter/api/handler"
	"moment/internal/adapter/api/middleware"
)

func SetupServiceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	serviceHandler := handler.GetServiceHandler()

	services := e.Group("/services")

	// Public browse surface.
	services.GET("", serviceHandler.ListServices)
	services.GET("/:id", serviceHandler.GetService)
	services.GET("/provider/:providerId", serviceHandler.ListServicesByProvider)

	services.POST("", serviceHandler.CreateService, authMiddleware.Authenticate)
	services.PUT("/:id", serviceHandler.UpdateService, authMiddleware.Authenticate)
	services.DELETE("/:id", serviceHandler.DeleteService, authMiddleware.Authenticate)
}
