package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shoply/internal/domain/entity"
	"shoply/internal/domain/repository"
	mockRepo "shoply/internal/mocks/repository"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	t.Helper()

	categoryRepo := &mockRepo.MockCategoryRepository{}
	productRepo := &mockRepo.MockProductRepository{}

	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		ProductRepo:  productRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func TestCategoryService_DeleteCategory_RefusedWhileProductsRemain(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.productRepo.On("FindProductsByCategory", ctx, categoryID).
		Return([]*entity.Product{{ID: uuid.New(), CategoryID: categoryID}}, nil)

	err := fx.service.DeleteCategory(ctx, categoryID)
	requireErrorCode(t, err, "DEPENDENT_ENTITIES_EXIST")

	fx.categoryRepo.AssertNotCalled(t, "DeleteCategoryByID", mock.Anything, mock.Anything)
}

func TestCategoryService_DeleteCategory_DependentCheckPrecedesExistence(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	// Products referencing the ID exist even though the category row is
	// gone; the conflict wins over the 404.
	fx.productRepo.On("FindProductsByCategory", ctx, categoryID).
		Return([]*entity.Product{{ID: uuid.New(), CategoryID: categoryID}}, nil)

	err := fx.service.DeleteCategory(ctx, categoryID)
	requireErrorCode(t, err, "DEPENDENT_ENTITIES_EXIST")

	fx.categoryRepo.AssertNotCalled(t, "FindCategoryByID", mock.Anything, mock.Anything)
}

func TestCategoryService_DeleteCategory_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.productRepo.On("FindProductsByCategory", ctx, categoryID).
		Return([]*entity.Product{}, nil)

	fx.categoryRepo.On("DeleteCategoryByID", ctx, categoryID).
		Return(nil)

	require.NoError(t, fx.service.DeleteCategory(ctx, categoryID))
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.productRepo.On("FindProductsByCategory", ctx, categoryID).
		Return([]*entity.Product{}, nil)

	fx.categoryRepo.On("DeleteCategoryByID", ctx, categoryID).
		Return(repository.ErrCategoryNotFound)

	err := fx.service.DeleteCategory(ctx, categoryID)
	requireErrorCode(t, err, "CATEGORY_NOT_FOUND")
}

func TestCategoryService_CreateCategory(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.On("CreateCategory", ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, "Books")
	require.NoError(t, err)
	assert.Equal(t, "Books", category.Name)
}

func TestCategoryService_UpdateCategory_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.UpdateCategory(ctx, categoryID, "Renamed")
	assert.Nil(t, category)
	requireErrorCode(t, err, "CATEGORY_NOT_FOUND")
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Books"}, nil)

	fx.categoryRepo.On("UpdateCategory", ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := fx.service.UpdateCategory(ctx, categoryID, "Magazines")
	require.NoError(t, err)
	assert.Equal(t, "Magazines", category.Name)
}

func TestCategoryService_ListCategories(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	expected := []*entity.Category{
		{ID: uuid.New(), Name: "Books"},
		{ID: uuid.New(), Name: "Games"},
	}

	fx.categoryRepo.On("FindCategories", ctx).
		Return(expected, nil)

	categories, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}
