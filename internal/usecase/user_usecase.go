package usecase

import (
	"context"
	"time"

	"moment/internal/domain/entity"
	"moment/internal/domain/policy"
	"moment/internal/domain/repository"
	"moment/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// UpdateUserInput deliberately omits role: role changes go through the
// claims endpoints so the claim cache and document never diverge.
type UpdateUserInput struct {
	Name   string
	Email  string
	Phone  string
	Avatar string
}

func (uc *UserUseCase) GetUser(ctx context.Context, p *policy.Principal, uid string) (*entity.User, error) {
	if !policy.CanReadUser(p, uid) {
		return nil, errors.Forbidden("You don't have permission to view this user", nil)
	}

	return uc.userRepo.GetByID(ctx, uid)
}

func (uc *UserUseCase) ListUsers(ctx context.Context, p *policy.Principal) ([]*entity.User, error) {
	if !policy.CanListUsers(p) {
		return nil, errors.Forbidden("Admin privileges required", nil)
	}

	return uc.userRepo.List(ctx)
}

func (uc *UserUseCase) UpdateUser(ctx context.Context, p *policy.Principal, uid string, input UpdateUserInput) (*entity.User, error) {
	if !policy.CanUpdateUser(p, uid) {
		return nil, errors.Forbidden("You don't have permission to update this user", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, p *policy.Principal, uid string) error {
	if !policy.CanDeleteUser(p) {
		return errors.Forbidden("Admin privileges required", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, uid); err != nil {
		return err
	}

	return uc.userRepo.Delete(ctx, uid)
}
