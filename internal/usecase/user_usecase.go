package usecase

import (
	"context"

	"waterdrops/internal/domain/entity"
)

// AdminStatus is the answer to "is this email an admin".
type AdminStatus struct {
	Admin bool `json:"admin"`
}

// UserUsecase defines the account and role use cases.
type UserUsecase interface {
	// RegisterUser stores a new user. Duplicated emails are accepted.
	RegisterUser(ctx context.Context, user *entity.User) (*entity.InsertResult, error)

	// CheckAdmin reports whether the user with that email has the admin role.
	// Unknown emails are not admins.
	CheckAdmin(ctx context.Context, email string) (*AdminStatus, error)

	// PromoteToAdmin grants the admin role. Unknown emails are a no-op.
	PromoteToAdmin(ctx context.Context, email string) (*entity.UpdateResult, error)
}
