package router

import (
	"github.com/labstack/echo/v4"

	"moment/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupProviderRouter(e, authMiddleware)
	SetupServiceRouter(e, authMiddleware)
	SetupBookingRouter(e, authMiddleware)
	SetupUploadRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
