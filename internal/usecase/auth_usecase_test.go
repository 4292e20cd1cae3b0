package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"moment/internal/domain/entity"
	"moment/internal/domain/policy"
	"moment/pkg/errors"
)

func newAuthUseCaseForTest(adminSecret string) (*AuthUseCase, *fakeUserRepo, *fakeProviderRepo, *fakeAuthClient) {
	userRepo := newFakeUserRepo()
	providerRepo := newFakeProviderRepo()
	authClient := newFakeAuthClient()
	return NewAuthUseCase(userRepo, providerRepo, authClient, adminSecret), userRepo, providerRepo, authClient
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	uc, userRepo, _, authClient := newAuthUseCaseForTest("")

	user, err := uc.Register(context.Background(), RegisterInput{UID: "uid-1", Email: "a@example.com", Name: "Asha"})

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Len(t, userRepo.users, 1)
	assert.Empty(t, authClient.claims)
}

func TestRegisterIsIdempotent(t *testing.T) {
	uc, userRepo, _, _ := newAuthUseCaseForTest("")
	ctx := context.Background()

	first, err := uc.Register(ctx, RegisterInput{UID: "uid-1", Email: "a@example.com", Name: "Asha"})
	assert.NoError(t, err)

	again, err := uc.Register(ctx, RegisterInput{UID: "uid-1", Email: "changed@example.com", Name: "Changed"})
	assert.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, "a@example.com", again.Email)
	assert.Len(t, userRepo.users, 1)
}

func TestRegisterProviderCreatesPendingProfile(t *testing.T) {
	uc, _, providerRepo, authClient := newAuthUseCaseForTest("")

	user, err := uc.Register(context.Background(), RegisterInput{
		UID:        "uid-1",
		Email:      "p@example.com",
		Name:       "Priya Events",
		Role:       entity.RoleProvider,
		Experience: "5 years",
		AadharURL:  "https://storage.googleapis.com/bucket/moment/aadhar/doc.pdf",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleProvider, user.Role)
	assert.Equal(t, map[string]interface{}{"provider": true}, authClient.claims["uid-1"])

	profile, err := providerRepo.GetByUID(context.Background(), "uid-1")
	assert.NoError(t, err)
	assert.Equal(t, "Priya Events", profile.BusinessName)
	assert.Equal(t, policy.ProviderPending, profile.Status)
	assert.Equal(t, "other", profile.Category)
	assert.Equal(t, "5 years", profile.Experience)
	assert.False(t, profile.Published)
}

func TestRegisterProviderFallbackBusinessName(t *testing.T) {
	uc, _, providerRepo, _ := newAuthUseCaseForTest("")

	_, err := uc.Register(context.Background(), RegisterInput{UID: "uid-1", Email: "p@example.com", Role: entity.RoleProvider})
	assert.NoError(t, err)

	profile, err := providerRepo.GetByUID(context.Background(), "uid-1")
	assert.NoError(t, err)
	assert.Equal(t, "New Provider", profile.BusinessName)
}

func TestRegisterProviderDoesNotDuplicateProfile(t *testing.T) {
	uc, _, providerRepo, _ := newAuthUseCaseForTest("")
	ctx := context.Background()
	providerRepo.Create(ctx, &entity.Provider{ID: "p1", UID: "uid-1", BusinessName: "Existing"})

	_, err := uc.Register(ctx, RegisterInput{UID: "uid-1", Email: "p@example.com", Role: entity.RoleProvider})
	assert.NoError(t, err)
	assert.Len(t, providerRepo.providers, 1)

	profile, _ := providerRepo.GetByUID(ctx, "uid-1")
	assert.Equal(t, "Existing", profile.BusinessName)
}

func TestRegisterAdminSetsClaim(t *testing.T) {
	uc, _, _, authClient := newAuthUseCaseForTest("")

	_, err := uc.Register(context.Background(), RegisterInput{UID: "uid-1", Email: "a@example.com", Role: entity.RoleAdmin})
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"admin": true}, authClient.claims["uid-1"])
}

func TestSetClaimsAdminOnly(t *testing.T) {
	uc, userRepo, _, authClient := newAuthUseCaseForTest("")
	ctx := context.Background()
	userRepo.Create(ctx, &entity.User{ID: "uid-1", Role: entity.RoleUser})

	err := uc.SetClaims(ctx, &policy.Principal{UID: "uid-2", Provider: true}, "uid-1", map[string]interface{}{"provider": true})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.SetClaims(ctx, &policy.Principal{UID: "admin", Admin: true}, "uid-1", map[string]interface{}{"provider": true})
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"provider": true}, authClient.claims["uid-1"])

	user, _ := userRepo.GetByID(ctx, "uid-1")
	assert.Equal(t, entity.RoleProvider, user.Role)
}

func TestSetClaimsToleratesMissingUserDoc(t *testing.T) {
	uc, _, _, _ := newAuthUseCaseForTest("")

	// Claims still land even when no user document exists yet.
	err := uc.SetClaims(context.Background(), &policy.Principal{UID: "admin", Admin: true}, "ghost", map[string]interface{}{"admin": true})
	assert.NoError(t, err)
}

func TestSetAdminSecretGate(t *testing.T) {
	uc, userRepo, _, authClient := newAuthUseCaseForTest("s3cret")
	ctx := context.Background()
	userRepo.Create(ctx, &entity.User{ID: "uid-1", Role: entity.RoleUser})

	err := uc.SetAdmin(ctx, "uid-1", "wrong")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Empty(t, authClient.claims)

	err = uc.SetAdmin(ctx, "uid-1", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"admin": true}, authClient.claims["uid-1"])

	user, _ := userRepo.GetByID(ctx, "uid-1")
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestSetAdminDisabledWithoutSecret(t *testing.T) {
	uc, _, _, _ := newAuthUseCaseForTest("")

	// An unset secret closes the endpoint rather than leaving it open.
	err := uc.SetAdmin(context.Background(), "uid-1", "")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
