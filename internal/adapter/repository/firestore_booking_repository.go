package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"moment/internal/domain/entity"
	"moment/internal/domain/repository"
	"moment/pkg/errors"
)

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		doc := r.client.Collection("bookings").NewDoc()
		booking.ID = doc.ID
	}

	now := time.Now()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	_, err := r.client.Collection("bookings").Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return errors.Internal("Failed to create booking", err)
	}

	return nil
}

func (r *firestoreBookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	doc, err := r.client.Collection("bookings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Booking", err)
		}
		return nil, errors.Internal("Failed to get booking", err)
	}

	var booking entity.Booking
	if err := doc.DataTo(&booking); err != nil {
		return nil, errors.Internal("Failed to parse booking data", err)
	}

	return &booking, nil
}

func (r *firestoreBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	booking.UpdatedAt = time.Now()

	_, err := r.client.Collection("bookings").Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return errors.Internal("Failed to update booking", err)
	}

	return nil
}

func (r *firestoreBookingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("bookings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete booking", err)
	}

	return nil
}

func (r *firestoreBookingRepository) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	query := r.client.Collection("bookings").OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreBookingRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Booking, error) {
	query := r.client.Collection("bookings").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreBookingRepository) ListByProviderID(ctx context.Context, providerID string) ([]*entity.Booking, error) {
	query := r.client.Collection("bookings").
		Where("providerId", "==", providerID).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreBookingRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Booking, error) {
	var bookings []*entity.Booking

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate bookings", err)
		}

		var booking entity.Booking
		if err := doc.DataTo(&booking); err != nil {
			return nil, errors.Internal("Failed to parse booking data", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
