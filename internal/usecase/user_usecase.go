// Package usecase defines the application's use case interfaces and their
// input/output shapes.
package usecase

import (
	"context"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput carries the fields accepted when creating a user.
// The password is hashed before it ever reaches the store.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsActive  *bool
}

// UpdateUserInput carries a partial user update; nil fields are left unchanged.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	IsActive  *bool
}

// UserUsecase defines the interface for user management use cases.
type UserUsecase interface {
	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// CreateUser registers a new user with a unique email.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser applies a partial update to an existing user.
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
