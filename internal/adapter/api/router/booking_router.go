package router

import (
	"github.com/labstack/echo/v4"

	"moment/internal/adapter/api/handler"
	"moment/internal/adapter/api/middleware"
)

func SetupBookingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	bookingHandler := handler.GetBookingHandler()

	bookings := e.Group("/bookings")
	bookings.Use(authMiddleware.Authenticate)

	bookings.GET("", bookingHandler.ListBookings)
	bookings.GET("/:id", bookingHandler.GetBooking)
	bookings.GET("/user/:userId", bookingHandler.ListBookingsByUser)
	bookings.GET("/provider/:providerId", bookingHandler.ListBookingsByProvider)
	bookings.POST("", bookingHandler.CreateBooking)
	bookings.PUT("/:id", bookingHandler.UpdateBooking)
	bookings.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
	bookings.DELETE("/:id", bookingHandler.DeleteBooking)
}
