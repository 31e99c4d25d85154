package impl

import (
	"context"

	"waterdrops/internal/domain/entity"
	domainerrors "waterdrops/internal/domain/errors"
	"waterdrops/internal/domain/repository"
	"waterdrops/internal/errors"
	"waterdrops/internal/usecase"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
	}
}

// RegisterUser stores a new user
func (s *userService) RegisterUser(ctx context.Context, user *entity.User) (*entity.InsertResult, error) {
	if user.Role != "" && !user.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role " + user.Role.String())
	}

	result, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	return result, nil
}

// CheckAdmin derives the admin flag from the stored role
func (s *userService) CheckAdmin(ctx context.Context, email string) (*usecase.AdminStatus, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check admin role")
	}

	return &usecase.AdminStatus{Admin: user.IsAdmin()}, nil
}

// PromoteToAdmin sets the admin role on an existing user
func (s *userService) PromoteToAdmin(ctx context.Context, email string) (*entity.UpdateResult, error) {
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	result, err := s.userRepo.SetRoleByEmail(ctx, email, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to promote user")
	}

	return result, nil
}
