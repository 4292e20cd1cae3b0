package router

import (
	"github.com/labstack/echo/v4"

	"moment/internal/adapter/api/handler"
	"moment/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("", userHandler.ListUsers)
	users.GET("/:uid", userHandler.GetUser)
	users.PUT("/:uid", userHandler.UpdateUser)
	users.DELETE("/:uid", userHandler.DeleteUser)
}
