package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shoply/internal/domain/entity"
	"shoply/internal/domain/repository"
	mockRepo "shoply/internal/mocks/repository"
	mockService "shoply/internal/mocks/service"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockService.MockPasswordHasher{}

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.On("Hash", "s3cret-pass").
		Return("$2a$10$hash", nil)

	var created *entity.User
	fx.userRepo.On("CreateUser", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "$2a$10$hash", created.PasswordHash)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.On("FindUserByEmail", ctx, "ada@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "ada@example.com"}, nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
	})
	assert.Nil(t, user)
	requireErrorCode(t, err, "USER_ALREADY_EXISTS")

	fx.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_PartialFields(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{
			ID:        userID,
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			IsActive:  true,
		}, nil)

	fx.userRepo.On("UpdateUser", ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	newFirst := "Augusta"
	user, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		FirstName: &newFirst,
	})
	require.NoError(t, err)

	assert.Equal(t, "Augusta", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.True(t, user.IsActive)
}

func TestUserService_UpdateUser_EmailTakenByOther(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(&entity.User{ID: userID, Email: "ada@example.com"}, nil)

	fx.userRepo.On("FindUserByEmail", ctx, "grace@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "grace@example.com"}, nil)

	newEmail := "grace@example.com"
	user, err := fx.service.UpdateUser(ctx, userID, &usecase.UpdateUserInput{
		Email: &newEmail,
	})
	assert.Nil(t, user)
	requireErrorCode(t, err, "USER_ALREADY_EXISTS")

	fx.userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindUserByID", ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)
	assert.Nil(t, user)
	requireErrorCode(t, err, "USER_NOT_FOUND")
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("DeleteUserByID", ctx, userID).
		Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, userID)
	requireErrorCode(t, err, "USER_NOT_FOUND")
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	expected := []*entity.User{
		{ID: uuid.New(), Email: "ada@example.com"},
	}

	fx.userRepo.On("FindUsers", ctx).
		Return(expected, nil)

	users, err := fx.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, users)
}
