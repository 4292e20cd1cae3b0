package repository

import (
	"context"

	"moment/internal/domain/entity"
)

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	GetByID(ctx context.Context, id string) (*entity.Provider, error)
	GetByUID(ctx context.Context, uid string) (*entity.Provider, error)
	Update(ctx context.Context, provider *entity.Provider) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter map[string]interface{}) ([]*entity.Provider, error)
}
