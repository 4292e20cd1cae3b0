package handler

import (
	"github.com/labstack/echo/v4"

	apimiddleware "moment/internal/adapter/api/middleware"
	"moment/internal/usecase"
	"moment/pkg/response"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type createBookingRequest struct {
	UserID     string   `json:"userId"` // accepted but always replaced by the caller's uid
	ProviderID string   `json:"providerId" validate:"required"`
	ServiceID  string   `json:"serviceId"`
	EventType  string   `json:"eventType"`
	Date       string   `json:"date"`
	Dates      []string `json:"dates"`
	Time       string   `json:"time"`
	GuestCount int      `json:"guestCount" validate:"gte=0"`
	Notes      string   `json:"notes"`
	TotalPrice float64  `json:"totalPrice" validate:"gte=0"`
}

type updateBookingRequest struct {
	UserID     string   `json:"userId"`
	ProviderID string   `json:"providerId"`
	ServiceID  string   `json:"serviceId"`
	EventType  string   `json:"eventType"`
	Date       string   `json:"date"`
	Dates      []string `json:"dates"`
	Time       string   `json:"time"`
	GuestCount *int     `json:"guestCount" validate:"omitempty,gte=0"`
	Notes      string   `json:"notes"`
	TotalPrice *float64 `json:"totalPrice" validate:"omitempty,gte=0"`
}

type bookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingUseCase.ListAllBookings(c.Request().Context(), apimiddleware.Principal(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.bookingUseCase.GetBookingByID(c.Request().Context(), apimiddleware.Principal(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, booking)
}

func (h *BookingHandler) ListBookingsByUser(c echo.Context) error {
	bookings, err := h.bookingUseCase.ListBookingsByUser(c.Request().Context(), apimiddleware.Principal(c), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) ListBookingsByProvider(c echo.Context) error {
	bookings, err := h.bookingUseCase.ListBookingsByProvider(c.Request().Context(), apimiddleware.Principal(c), c.Param("providerId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.CreateBooking(c.Request().Context(), apimiddleware.Principal(c), usecase.CreateBookingInput{
		UserID:     req.UserID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		EventType:  req.EventType,
		Date:       req.Date,
		Dates:      req.Dates,
		Time:       req.Time,
		GuestCount: req.GuestCount,
		Notes:      req.Notes,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, booking)
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.UpdateBooking(c.Request().Context(), apimiddleware.Principal(c), c.Param("id"), usecase.UpdateBookingInput{
		UserID:     req.UserID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		EventType:  req.EventType,
		Date:       req.Date,
		Dates:      req.Dates,
		Time:       req.Time,
		GuestCount: req.GuestCount,
		Notes:      req.Notes,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, booking)
}

func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	var req bookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.UpdateStatus(c.Request().Context(), apimiddleware.Principal(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, booking)
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	if err := h.bookingUseCase.DeleteBooking(c.Request().Context(), apimiddleware.Principal(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Booking deleted successfully"})
}
