// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shoply/internal/delivery/context"
	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/domain/service"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers retrieves all users.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	return users, nil
}

// CreateUser registers a new user. The email must not already be taken and
// the password is hashed before the store ever sees it.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if _, err := srv.userRepo.FindUserByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WithDetails(input.Email)
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashed,
		IsActive:     isActive,
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists.WithDetails(input.Email)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.String("userID", user.ID.String()))

	return user, nil
}

// GetUser retrieves a user by ID.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewNotFoundError(domainerrors.ErrUserNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// UpdateUser applies a partial update; nil input fields keep their stored
// values. A changed email must still be unique.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewNotFoundError(domainerrors.ErrUserNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	if input.Email != nil && *input.Email != user.Email {
		if existing, err := srv.userRepo.FindUserByEmail(ctx, *input.Email); err == nil && existing.ID != id {
			return nil, domainerrors.ErrUserAlreadyExists.WithDetails(*input.Email)
		} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by email")
		}
		user.Email = *input.Email
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := srv.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists.WithDetails(user.Email)
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.String("userID", user.ID.String()))

	return user, nil
}

// DeleteUser removes a user by ID. Existing orders keep their userId
// reference; they are read history, not live joins.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.DeleteUserByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.NewNotFoundError(domainerrors.ErrUserNotFound, id)
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", id.String()))

	return nil
}
