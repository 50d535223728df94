// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shoply/internal/domain/entity"
	"shoply/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email address is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by its unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by its email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindUsers retrieves all users.
	FindUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser persists changes to an existing user.
	UpdateUser(ctx context.Context, user *entity.User) error

	// DeleteUserByID removes a user by its ID.
	DeleteUserByID(ctx context.Context, id uuid.UUID) error
}
