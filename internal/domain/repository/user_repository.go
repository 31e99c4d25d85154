package repository

import (
	"context"

	"waterdrops/internal/domain/entity"
)

// UserRepository defines operations on the users collection.
type UserRepository interface {
	// CreateUser inserts a user. Email uniqueness is not enforced.
	CreateUser(ctx context.Context, user *entity.User) (*entity.InsertResult, error)

	// FindUserByEmail returns the first user with that email or (nil, nil).
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// SetRoleByEmail sets the role of the first user with that email. It never
	// creates a user; an unknown email yields a zero-match result.
	SetRoleByEmail(ctx context.Context, email string, role entity.Role) (*entity.UpdateResult, error)
}
