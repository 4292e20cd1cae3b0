package usecase

import (
	"context"
	"time"

	"moment/internal/domain/entity"
	"moment/internal/domain/policy"
	"moment/internal/domain/repository"
	"moment/pkg/errors"
	"moment/pkg/logger"
)

// AuthUseCase provisions user documents for identity-provider subjects and
// keeps role claims in sync with the stored role.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	providerRepo repository.ProviderRepository
	authClient   AuthClient
	adminSecret  string
}

func NewAuthUseCase(userRepo repository.UserRepository, providerRepo repository.ProviderRepository, authClient AuthClient, adminSecret string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		providerRepo: providerRepo,
		authClient:   authClient,
		adminSecret:  adminSecret,
	}
}

type RegisterInput struct {
	UID        string
	Email      string
	Name       string
	Phone      string
	Role       string
	Experience string
	Address    string
	AadharURL  string
}

// Register is an idempotent upsert: registering an already-provisioned uid
// returns the stored user unchanged. Providers get a pending business
// profile, guarded by the unique uid key so a retry cannot duplicate it.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if existing, err := uc.userRepo.GetByID(ctx, input.UID); err == nil && existing != nil {
		return existing, nil
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}

	now := time.Now()
	user := &entity.User{
		ID:        input.UID,
		Email:     input.Email,
		Name:      input.Name,
		Phone:     input.Phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	switch role {
	case entity.RoleProvider:
		if err := uc.authClient.SetCustomClaims(ctx, input.UID, map[string]interface{}{"provider": true}); err != nil {
			return nil, errors.Internal("Failed to set provider claim", err)
		}
		if err := uc.ensureProviderProfile(ctx, input); err != nil {
			return nil, err
		}
	case entity.RoleAdmin:
		if err := uc.authClient.SetCustomClaims(ctx, input.UID, map[string]interface{}{"admin": true}); err != nil {
			return nil, errors.Internal("Failed to set admin claim", err)
		}
	}

	return user, nil
}

func (uc *AuthUseCase) ensureProviderProfile(ctx context.Context, input RegisterInput) error {
	if existing, err := uc.providerRepo.GetByUID(ctx, input.UID); err == nil && existing != nil {
		return nil
	}

	businessName := input.Name
	if businessName == "" {
		businessName = "New Provider"
	}

	provider := &entity.Provider{
		UID:          input.UID,
		BusinessName: businessName,
		Description:  "Waiting for admin approval",
		Category:     "other",
		Phone:        input.Phone,
		Email:        input.Email,
		Experience:   input.Experience,
		Address:      input.Address,
		AadharURL:    input.AadharURL,
		Images:       []string{},
		Features:     []string{},
		Rating:       0,
		ReviewCount:  0,
		Status:       policy.ProviderPending,
	}

	return uc.providerRepo.Create(ctx, provider)
}

// SetClaims writes custom claims for a user and mirrors the implied role
// onto the user document in the same operation.
func (uc *AuthUseCase) SetClaims(ctx context.Context, p *policy.Principal, uid string, claims map[string]interface{}) error {
	if !policy.CanSetClaims(p) {
		return errors.Forbidden("Admin privileges required", nil)
	}

	if err := uc.authClient.SetCustomClaims(ctx, uid, claims); err != nil {
		return errors.Internal("Failed to set custom claims", err)
	}

	role := ""
	if admin, ok := claims["admin"].(bool); ok && admin {
		role = entity.RoleAdmin
	} else if provider, ok := claims["provider"].(bool); ok && provider {
		role = entity.RoleProvider
	}
	if role == "" {
		return nil
	}

	return uc.updateRole(ctx, uid, role)
}

// SetAdmin grants the admin claim when the shared secret matches. Used for
// initial admin bootstrap only.
func (uc *AuthUseCase) SetAdmin(ctx context.Context, uid, secret string) error {
	if uc.adminSecret == "" || secret != uc.adminSecret {
		return errors.Forbidden("Invalid admin secret", nil)
	}

	if err := uc.authClient.SetCustomClaims(ctx, uid, map[string]interface{}{"admin": true}); err != nil {
		return errors.Internal("Failed to set admin claim", err)
	}

	return uc.updateRole(ctx, uid, entity.RoleAdmin)
}

func (uc *AuthUseCase) updateRole(ctx context.Context, uid, role string) error {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		logger.Warn("claims set for %s but user document missing: %v", uid, err)
		return nil
	}

	user.Role = role
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}
