package usecase

import (
	"context"

	"moment/internal/domain/entity"
	"moment/internal/domain/policy"
	"moment/internal/domain/repository"
	"moment/pkg/errors"
)

type ServiceUseCase struct {
	serviceRepo  repository.ServiceRepository
	providerRepo repository.ProviderRepository
}

func NewServiceUseCase(serviceRepo repository.ServiceRepository, providerRepo repository.ProviderRepository) *ServiceUseCase {
	return &ServiceUseCase{
		serviceRepo:  serviceRepo,
		providerRepo: providerRepo,
	}
}

type CreateServiceInput struct {
	ProviderID  string
	Name        string
	Description string
	Category    string
	Price       float64
	Duration    int
	Images      []string
	Available   *bool
}

type UpdateServiceInput struct {
	Name        string
	Description string
	Category    string
	Price       *float64
	Duration    *int
	Images      []string
	Available   *bool
}

type ServiceFilter struct {
	Category  string
	Available *bool
}

func (uc *ServiceUseCase) CreateService(ctx context.Context, p *policy.Principal, input CreateServiceInput) (*entity.Service, error) {
	owner, err := uc.providerRepo.GetByID(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}

	if !policy.CanManageService(p, owner) {
		return nil, errors.Forbidden("You don't have permission to manage services for this provider", nil)
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	service := &entity.Service{
		ProviderID:  input.ProviderID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Duration:    input.Duration,
		Images:      images,
		Available:   available,
	}

	if err := uc.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

func (uc *ServiceUseCase) GetServiceByID(ctx context.Context, id string) (*entity.Service, error) {
	return uc.serviceRepo.GetByID(ctx, id)
}

func (uc *ServiceUseCase) ListServices(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error) {
	filters := make(map[string]interface{})
	if filter.Category != "" {
		filters["category"] = filter.Category
	}
	if filter.Available != nil {
		filters["available"] = *filter.Available
	}

	return uc.serviceRepo.List(ctx, filters)
}

func (uc *ServiceUseCase) ListByProviderID(ctx context.Context, providerID string) ([]*entity.Service, error) {
	return uc.serviceRepo.ListByProviderID(ctx, providerID)
}

func (uc *ServiceUseCase) UpdateService(ctx context.Context, p *policy.Principal, id string, input UpdateServiceInput) (*entity.Service, error) {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Ownership resolves through the owning provider.
	owner, err := uc.providerRepo.GetByID(ctx, service.ProviderID)
	if err != nil {
		return nil, err
	}

	if !policy.CanManageService(p, owner) {
		return nil, errors.Forbidden("You don't have permission to manage services for this provider", nil)
	}

	if input.Name != "" {
		service.Name = input.Name
	}
	if input.Description != "" {
		service.Description = input.Description
	}
	if input.Category != "" {
		service.Category = input.Category
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Images != nil {
		service.Images = input.Images
	}
	if input.Available != nil {
		service.Available = *input.Available
	}

	if err := uc.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

func (uc *ServiceUseCase) DeleteService(ctx context.Context, p *policy.Principal, id string) error {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	owner, err := uc.providerRepo.GetByID(ctx, service.ProviderID)
	if err != nil {
		return err
	}

	if !policy.CanManageService(p, owner) {
		return errors.Forbidden("You don't have permission to manage services for this provider", nil)
	}

	return uc.serviceRepo.Delete(ctx, id)
}
