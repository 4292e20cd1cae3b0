package usecase

import (
	"context"
	"fmt"
	"time"

	"moment/internal/domain/entity"
	"moment/pkg/errors"
)

// In-memory repositories backing the usecase tests. They mirror the
// Firestore adapters: generated ids, timestamp stamping on create, and
// NOT_FOUND app errors for missing documents.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

type fakeProviderRepo struct {
	providers map[string]*entity.Provider
	nextID    int
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*entity.Provider)}
}

func (r *fakeProviderRepo) Create(ctx context.Context, provider *entity.Provider) error {
	if provider.ID == "" {
		r.nextID++
		provider.ID = fmt.Sprintf("provider-%d", r.nextID)
	}
	now := time.Now()
	provider.CreatedAt = now
	provider.UpdatedAt = now
	r.providers[provider.ID] = provider
	return nil
}

func (r *fakeProviderRepo) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	provider, ok := r.providers[id]
	if !ok {
		return nil, errors.NotFound("Provider", nil)
	}
	return provider, nil
}

func (r *fakeProviderRepo) GetByUID(ctx context.Context, uid string) (*entity.Provider, error) {
	for _, p := range r.providers {
		if p.UID == uid {
			return p, nil
		}
	}
	return nil, errors.NotFound("Provider", nil)
}

func (r *fakeProviderRepo) Update(ctx context.Context, provider *entity.Provider) error {
	if _, ok := r.providers[provider.ID]; !ok {
		return errors.NotFound("Provider", nil)
	}
	provider.UpdatedAt = time.Now()
	r.providers[provider.ID] = provider
	return nil
}

func (r *fakeProviderRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.providers[id]; !ok {
		return errors.NotFound("Provider", nil)
	}
	delete(r.providers, id)
	return nil
}

func (r *fakeProviderRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Provider, error) {
	var providers []*entity.Provider
	for _, p := range r.providers {
		if status, ok := filter["status"]; ok && p.Status != status {
			continue
		}
		if category, ok := filter["category"]; ok && p.Category != category {
			continue
		}
		if published, ok := filter["published"]; ok && p.Published != published {
			continue
		}
		providers = append(providers, p)
	}
	return providers, nil
}

type fakeServiceRepo struct {
	services map[string]*entity.Service
	nextID   int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*entity.Service)}
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	if service.ID == "" {
		r.nextID++
		service.ID = fmt.Sprintf("service-%d", r.nextID)
	}
	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	service, ok := r.services[id]
	if !ok {
		return nil, errors.NotFound("Service", nil)
	}
	return service, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	if _, ok := r.services[service.ID]; !ok {
		return errors.NotFound("Service", nil)
	}
	service.UpdatedAt = time.Now()
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return errors.NotFound("Service", nil)
	}
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Service, error) {
	var services []*entity.Service
	for _, s := range r.services {
		if category, ok := filter["category"]; ok && s.Category != category {
			continue
		}
		if available, ok := filter["available"]; ok && s.Available != available {
			continue
		}
		services = append(services, s)
	}
	return services, nil
}

func (r *fakeServiceRepo) ListByProviderID(ctx context.Context, providerID string) ([]*entity.Service, error) {
	var services []*entity.Service
	for _, s := range r.services {
		if s.ProviderID == providerID {
			services = append(services, s)
		}
	}
	return services, nil
}

type fakeBookingRepo struct {
	bookings map[string]*entity.Booking
	nextID   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		r.nextID++
		booking.ID = fmt.Sprintf("booking-%d", r.nextID)
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, errors.NotFound("Booking", nil)
	}
	return booking, nil
}

func (r *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	if _, ok := r.bookings[booking.ID]; !ok {
		return errors.NotFound("Booking", nil)
	}
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return errors.NotFound("Booking", nil)
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) ListAll(ctx context.Context) ([]*entity.Booking, error) {
	bookings := make([]*entity.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *fakeBookingRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *fakeBookingRepo) ListByProviderID(ctx context.Context, providerID string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

type fakeAuthClient struct {
	claims map[string]map[string]interface{}
	err    error
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{claims: make(map[string]map[string]interface{})}
}

func (c *fakeAuthClient) SetCustomClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	if c.err != nil {
		return c.err
	}
	c.claims[uid] = claims
	return nil
}
