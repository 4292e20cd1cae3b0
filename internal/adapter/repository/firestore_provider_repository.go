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

type firestoreProviderRepository struct {
	client *firestore.Client
}

func NewFirestoreProviderRepository(client *firestore.Client) repository.ProviderRepository {
	return &firestoreProviderRepository{
		client: client,
	}
}

func (r *firestoreProviderRepository) Create(ctx context.Context, provider *entity.Provider) error {
	if provider.ID == "" {
		doc := r.client.Collection("providers").NewDoc()
		provider.ID = doc.ID
	}

	now := time.Now()
	if provider.CreatedAt.IsZero() {
		provider.CreatedAt = now
	}
	provider.UpdatedAt = now

	_, err := r.client.Collection("providers").Doc(provider.ID).Set(ctx, provider)
	if err != nil {
		return errors.Internal("Failed to create provider", err)
	}

	return nil
}

func (r *firestoreProviderRepository) GetByID(ctx context.Context, id string) (*entity.Provider, error) {
	doc, err := r.client.Collection("providers").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Provider", err)
		}
		return nil, errors.Internal("Failed to get provider", err)
	}

	var provider entity.Provider
	if err := doc.DataTo(&provider); err != nil {
		return nil, errors.Internal("Failed to parse provider data", err)
	}

	return &provider, nil
}

func (r *firestoreProviderRepository) GetByUID(ctx context.Context, uid string) (*entity.Provider, error) {
	query := r.client.Collection("providers").Where("uid", "==", uid).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()

	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Provider", nil)
		}
		return nil, errors.Internal("Failed to query provider", err)
	}

	var provider entity.Provider
	if err := doc.DataTo(&provider); err != nil {
		return nil, errors.Internal("Failed to parse provider data", err)
	}

	return &provider, nil
}

func (r *firestoreProviderRepository) Update(ctx context.Context, provider *entity.Provider) error {
	provider.UpdatedAt = time.Now()

	_, err := r.client.Collection("providers").Doc(provider.ID).Set(ctx, provider)
	if err != nil {
		return errors.Internal("Failed to update provider", err)
	}

	return nil
}

func (r *firestoreProviderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("providers").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete provider", err)
	}

	return nil
}

func (r *firestoreProviderRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Provider, error) {
	query := r.client.Collection("providers").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	iter := query.Documents(ctx)
	var providers []*entity.Provider

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate providers", err)
		}

		var provider entity.Provider
		if err := doc.DataTo(&provider); err != nil {
			return nil, errors.Internal("Failed to parse provider data", err)
		}
		providers = append(providers, &provider)
	}

	return providers, nil
}
