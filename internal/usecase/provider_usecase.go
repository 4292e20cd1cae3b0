package usecase

import (
	"context"
	"fmt"

	"moment/internal/domain/entity"
	"moment/internal/domain/policy"
	"moment/internal/domain/repository"
	"moment/pkg/errors"
	"moment/pkg/logger"
)

type ProviderUseCase struct {
	providerRepo repository.ProviderRepository
	serviceRepo  repository.ServiceRepository
}

func NewProviderUseCase(providerRepo repository.ProviderRepository, serviceRepo repository.ServiceRepository) *ProviderUseCase {
	return &ProviderUseCase{
		providerRepo: providerRepo,
		serviceRepo:  serviceRepo,
	}
}

type CreateProviderInput struct {
	BusinessName string
	Description  string
	Category     string
	Location     string
	City         string
	PriceRange   string
	Phone        string
	Email        string
	Avatar       string
	Images       []string
	Features     []string
	Experience   string
	Address      string
	AadharURL    string
}

type UpdateProviderInput struct {
	UID          string
	BusinessName string
	Description  string
	Category     string
	Location     string
	City         string
	PriceRange   string
	Phone        string
	Email        string
	Avatar       string
	Images       []string
	Features     []string
	Experience   string
	Address      string
}

type ProviderFilter struct {
	Status    string
	Category  string
	Published *bool
}

// CreateProvider registers a business profile for the caller. The owning uid
// is always the authenticated principal; uid is unique so a second profile
// for the same user is rejected.
func (uc *ProviderUseCase) CreateProvider(ctx context.Context, p *policy.Principal, input CreateProviderInput) (*entity.Provider, error) {
	if existing, err := uc.providerRepo.GetByUID(ctx, p.UID); err == nil && existing != nil {
		return nil, errors.BadRequest("Provider profile already exists for this user", nil)
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}
	features := input.Features
	if features == nil {
		features = []string{}
	}

	provider := &entity.Provider{
		UID:          p.UID,
		BusinessName: input.BusinessName,
		Description:  input.Description,
		Category:     input.Category,
		Location:     input.Location,
		City:         input.City,
		PriceRange:   input.PriceRange,
		Phone:        input.Phone,
		Email:        input.Email,
		Avatar:       input.Avatar,
		Images:       images,
		Features:     features,
		Experience:   input.Experience,
		Address:      input.Address,
		AadharURL:    input.AadharURL,
		Rating:       0,
		ReviewCount:  0,
		Status:       policy.ProviderPending,
		Published:    false,
	}

	if err := uc.providerRepo.Create(ctx, provider); err != nil {
		return nil, err
	}

	return provider, nil
}

func (uc *ProviderUseCase) GetProviderByID(ctx context.Context, id string) (*entity.Provider, error) {
	return uc.providerRepo.GetByID(ctx, id)
}

func (uc *ProviderUseCase) GetProviderByUID(ctx context.Context, uid string) (*entity.Provider, error) {
	return uc.providerRepo.GetByUID(ctx, uid)
}

func (uc *ProviderUseCase) ListProviders(ctx context.Context, filter ProviderFilter) ([]*entity.Provider, error) {
	filters := make(map[string]interface{})
	if filter.Status != "" {
		filters["status"] = filter.Status
	}
	if filter.Category != "" {
		filters["category"] = filter.Category
	}
	if filter.Published != nil {
		filters["published"] = *filter.Published
	}

	return uc.providerRepo.List(ctx, filters)
}

// UpdateProvider merges non-empty fields over the stored document. The uid
// field is deliberately left overwritable to match the current API contract.
func (uc *ProviderUseCase) UpdateProvider(ctx context.Context, p *policy.Principal, id string, input UpdateProviderInput) (*entity.Provider, error) {
	provider, err := uc.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdateProvider(p, provider) {
		return nil, errors.Forbidden("You don't have permission to update this provider", nil)
	}

	if input.UID != "" {
		provider.UID = input.UID
	}
	if input.BusinessName != "" {
		provider.BusinessName = input.BusinessName
	}
	if input.Description != "" {
		provider.Description = input.Description
	}
	if input.Category != "" {
		provider.Category = input.Category
	}
	if input.Location != "" {
		provider.Location = input.Location
	}
	if input.City != "" {
		provider.City = input.City
	}
	if input.PriceRange != "" {
		provider.PriceRange = input.PriceRange
	}
	if input.Phone != "" {
		provider.Phone = input.Phone
	}
	if input.Email != "" {
		provider.Email = input.Email
	}
	if input.Avatar != "" {
		provider.Avatar = input.Avatar
	}
	if input.Images != nil {
		provider.Images = input.Images
	}
	if input.Features != nil {
		provider.Features = input.Features
	}
	if input.Experience != "" {
		provider.Experience = input.Experience
	}
	if input.Address != "" {
		provider.Address = input.Address
	}

	if err := uc.providerRepo.Update(ctx, provider); err != nil {
		return nil, err
	}

	return provider, nil
}

// UpdateStatus advances the approval lifecycle. Admin only, and the
// transition must be legal: pending -> approved/rejected, with admin
// re-decisions between approved and rejected.
func (uc *ProviderUseCase) UpdateStatus(ctx context.Context, p *policy.Principal, id, status string) (*entity.Provider, error) {
	if !policy.CanChangeProviderStatus(p) {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}

	if !policy.IsProviderStatus(status) {
		return nil, errors.Validation(fmt.Sprintf("Invalid provider status %q", status), nil)
	}

	provider, err := uc.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanTransitionProvider(provider.Status, status) {
		return nil, errors.Validation(fmt.Sprintf("Cannot change provider status from %q to %q", provider.Status, status), nil)
	}

	provider.Status = status
	if err := uc.providerRepo.Update(ctx, provider); err != nil {
		return nil, err
	}

	return provider, nil
}

// SetPublished toggles listing visibility. Strictly owner-only; admins do
// not get an implicit bypass here.
func (uc *ProviderUseCase) SetPublished(ctx context.Context, p *policy.Principal, id string, published bool) (*entity.Provider, error) {
	provider, err := uc.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanPublishProvider(p, provider) {
		return nil, errors.Forbidden("Only the provider owner can change visibility", nil)
	}

	provider.Published = published
	if err := uc.providerRepo.Update(ctx, provider); err != nil {
		return nil, err
	}

	return provider, nil
}

// DeleteProvider removes the profile and cascades over its services one
// document at a time; there is no multi-document transaction.
func (uc *ProviderUseCase) DeleteProvider(ctx context.Context, p *policy.Principal, id string) error {
	provider, err := uc.providerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !policy.CanDeleteProvider(p, provider) {
		return errors.Forbidden("You don't have permission to delete this provider", nil)
	}

	services, err := uc.serviceRepo.ListByProviderID(ctx, id)
	if err != nil {
		return err
	}
	for _, service := range services {
		if err := uc.serviceRepo.Delete(ctx, service.ID); err != nil {
			logger.Warn("cascade delete of service %s failed: %v", service.ID, err)
		}
	}

	return uc.providerRepo.Delete(ctx, id)
}
