package repository

import (
	"context"

	"moment/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*entity.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Booking, error)
	ListByProviderID(ctx context.Context, providerID string) ([]*entity.Booking, error)
}
