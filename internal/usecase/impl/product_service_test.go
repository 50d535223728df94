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

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	productRepo := &mockRepo.MockProductRepository{}
	categoryRepo := &mockRepo.MockCategoryRepository{}

	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func TestProductService_CreateProduct_CategoryMustExist(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:       "Widget",
		Price:      10.50,
		CategoryID: categoryID,
	})
	assert.Nil(t, product)
	requireErrorCode(t, err, "CATEGORY_NOT_FOUND")

	fx.productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestProductService_CreateProduct(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Books"}, nil)

	fx.productRepo.On("CreateProduct", ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.ProductInput{
		Name:        "Widget",
		Description: "A fine widget",
		Price:       10.50,
		CategoryID:  categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", product.Name)
	assert.InDelta(t, 10.50, product.Price, 1e-9)
	assert.True(t, product.IsActive)
}

func TestProductService_ListProducts_UnknownCategoryFallsBack(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	all := []*entity.Product{
		{ID: uuid.New(), Name: "Widget"},
		{ID: uuid.New(), Name: "Gadget"},
	}
	fx.productRepo.On("FindProducts", ctx).
		Return(all, nil)

	products, err := fx.service.ListProducts(ctx, &categoryID)
	require.NoError(t, err)
	assert.Equal(t, all, products)

	fx.productRepo.AssertNotCalled(t, "FindProductsByCategory", mock.Anything, mock.Anything)
}

func TestProductService_ListProducts_FilteredByCategory(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)

	filtered := []*entity.Product{
		{ID: uuid.New(), CategoryID: categoryID},
	}
	fx.productRepo.On("FindProductsByCategory", ctx, categoryID).
		Return(filtered, nil)

	products, err := fx.service.ListProducts(ctx, &categoryID)
	require.NoError(t, err)
	assert.Equal(t, filtered, products)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.On("FindProductByID", ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.UpdateProduct(ctx, productID, &usecase.ProductInput{
		Name:       "Widget",
		CategoryID: uuid.New(),
	})
	assert.Nil(t, product)
	requireErrorCode(t, err, "PRODUCT_NOT_FOUND")
}

func TestProductService_UpdateProduct(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	categoryID := uuid.New()

	fx.productRepo.On("FindProductByID", ctx, productID).
		Return(&entity.Product{
			ID:       productID,
			Name:     "Widget",
			Price:    10.50,
			IsActive: true,
		}, nil)

	fx.categoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)

	fx.productRepo.On("UpdateProduct", ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, productID, &usecase.ProductInput{
		Name:       "Widget v2",
		Price:      12.00,
		CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", product.Name)
	assert.InDelta(t, 12.00, product.Price, 1e-9)
	assert.True(t, product.IsActive)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.On("DeleteProductByID", ctx, productID).
		Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)
	requireErrorCode(t, err, "PRODUCT_NOT_FOUND")
}
