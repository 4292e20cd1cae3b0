package router

import (
	"github.com/labstack/echo/v4"

	"moment/internal/adapter/api/handler"
	"moment/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	upload := e.Group("/upload")

	// Public: registration-time document upload.
	upload.POST("", uploadHandler.Upload)

	upload.POST("/single", uploadHandler.UploadSingle, authMiddleware.Authenticate)
	upload.POST("/multiple", uploadHandler.UploadMultiple, authMiddleware.Authenticate)
	upload.DELETE("/:publicId", uploadHandler.Delete, authMiddleware.Authenticate)
}
