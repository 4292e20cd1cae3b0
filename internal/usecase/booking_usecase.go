package usecase

import (
	"context"
	"fmt"

	"moment/internal/domain/entity"
	"moment/internal/domain/policy"
	"moment/internal/domain/repository"
	"moment/pkg/errors"
)

type BookingUseCase struct {
	bookingRepo repository.BookingRepository
}

func NewBookingUseCase(bookingRepo repository.BookingRepository) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
	}
}

type CreateBookingInput struct {
	UserID     string // ignored: the authenticated principal always wins
	ProviderID string
	ServiceID  string
	EventType  string
	Date       string
	Dates      []string
	Time       string
	GuestCount int
	Notes      string
	TotalPrice float64
}

type UpdateBookingInput struct {
	UserID     string
	ProviderID string
	ServiceID  string
	EventType  string
	Date       string
	Dates      []string
	Time       string
	GuestCount *int
	Notes      string
	TotalPrice *float64
}

// CreateBooking persists a new pending booking for the authenticated user.
// Any client-supplied userId is discarded. Overlapping bookings for the same
// provider and date are not rejected; last write wins across the board.
func (uc *BookingUseCase) CreateBooking(ctx context.Context, p *policy.Principal, input CreateBookingInput) (*entity.Booking, error) {
	date, dates := normalizeDates(input.Date, input.Dates)

	booking := &entity.Booking{
		UserID:     p.UID,
		ProviderID: input.ProviderID,
		ServiceID:  input.ServiceID,
		EventType:  input.EventType,
		Date:       date,
		Dates:      dates,
		Time:       input.Time,
		GuestCount: input.GuestCount,
		Notes:      input.Notes,
		TotalPrice: input.TotalPrice,
		Status:     policy.BookingPending,
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// Date holds dates[0] by convention; a single-date booking gets a one-entry
// dates slice.
func normalizeDates(date string, dates []string) (string, []string) {
	if len(dates) == 0 {
		if date == "" {
			return "", []string{}
		}
		return date, []string{date}
	}
	if date == "" {
		date = dates[0]
	}
	return date, dates
}

func (uc *BookingUseCase) GetBookingByID(ctx context.Context, p *policy.Principal, id string) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanReadBooking(p, booking) {
		return nil, errors.Forbidden("You don't have permission to view this booking", nil)
	}

	return booking, nil
}

func (uc *BookingUseCase) ListAllBookings(ctx context.Context, p *policy.Principal) ([]*entity.Booking, error) {
	if !policy.CanListAllBookings(p) {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}

	return uc.bookingRepo.ListAll(ctx)
}

func (uc *BookingUseCase) ListBookingsByUser(ctx context.Context, p *policy.Principal, userID string) ([]*entity.Booking, error) {
	if !policy.CanListUserBookings(p, userID) {
		return nil, errors.Forbidden("You don't have permission to view these bookings", nil)
	}

	return uc.bookingRepo.ListByUserID(ctx, userID)
}

// ListBookingsByProvider is deliberately coarse: any provider-flagged
// principal may list any provider's bookings, matching the existing API.
func (uc *BookingUseCase) ListBookingsByProvider(ctx context.Context, p *policy.Principal, providerID string) ([]*entity.Booking, error) {
	if !policy.CanListProviderBookings(p) {
		return nil, errors.Forbidden("Provider access required", nil)
	}

	return uc.bookingRepo.ListByProviderID(ctx, providerID)
}

// UpdateBooking shallow-merges supplied fields over the stored document.
// Ownership fields are not guarded against overwrite.
func (uc *BookingUseCase) UpdateBooking(ctx context.Context, p *policy.Principal, id string, input UpdateBookingInput) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdateBooking(p, booking) {
		return nil, errors.Forbidden("You don't have permission to update this booking", nil)
	}

	if input.UserID != "" {
		booking.UserID = input.UserID
	}
	if input.ProviderID != "" {
		booking.ProviderID = input.ProviderID
	}
	if input.ServiceID != "" {
		booking.ServiceID = input.ServiceID
	}
	if input.EventType != "" {
		booking.EventType = input.EventType
	}
	// A date-only update leaves an existing dates[] intact; only a supplied
	// dates[] re-derives the pair.
	if len(input.Dates) > 0 {
		booking.Date, booking.Dates = normalizeDates(input.Date, input.Dates)
	} else if input.Date != "" {
		booking.Date = input.Date
	}
	if input.Time != "" {
		booking.Time = input.Time
	}
	if input.GuestCount != nil {
		booking.GuestCount = *input.GuestCount
	}
	if input.Notes != "" {
		booking.Notes = input.Notes
	}
	if input.TotalPrice != nil {
		booking.TotalPrice = *input.TotalPrice
	}

	if err := uc.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// UpdateStatus validates both enum membership and the transition:
// pending -> confirmed/cancelled, confirmed -> completed/cancelled,
// completed and cancelled are terminal.
func (uc *BookingUseCase) UpdateStatus(ctx context.Context, p *policy.Principal, id, status string) (*entity.Booking, error) {
	if !policy.IsBookingStatus(status) {
		return nil, errors.Validation(fmt.Sprintf("Invalid booking status %q", status), nil)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdateBooking(p, booking) {
		return nil, errors.Forbidden("You don't have permission to update this booking", nil)
	}

	if !policy.CanTransitionBooking(booking.Status, status) {
		return nil, errors.Validation(fmt.Sprintf("Cannot change booking status from %q to %q", booking.Status, status), nil)
	}

	booking.Status = status
	if err := uc.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (uc *BookingUseCase) DeleteBooking(ctx context.Context, p *policy.Principal, id string) error {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanDeleteBooking(p, booking) {
		return errors.Forbidden("You don't have permission to delete this booking", nil)
	}

	return uc.bookingRepo.Delete(ctx, id)
}
