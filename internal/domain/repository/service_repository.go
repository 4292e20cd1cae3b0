package repository

import (
	"context"

	"moment/internal/domain/entity"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Service, error)
	ListByProviderID(ctx context.Context, providerID string) ([]*entity.Service, error)
}
