package impl

import (
	"context"
	"log/slog"

	deliverycontext "shoply/internal/delivery/context"
	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts retrieves products, optionally narrowed to one category.
// A filter naming an unknown category is ignored and the full list is
// returned rather than an error or an empty set.
func (srv *productService) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error) {
	if categoryID != nil {
		if _, err := srv.categoryRepo.FindCategoryByID(ctx, *categoryID); err == nil {
			products, err := srv.productRepo.FindProductsByCategory(ctx, *categoryID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to find products by category")
			}

			return products, nil
		} else if !errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(err, "failed to find category by ID")
		}
	}

	products, err := srv.productRepo.FindProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return products, nil
}

// CreateProduct creates a new product. The referenced category must exist.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		IsActive:    isActive,
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("categoryID", product.CategoryID.String()),
	)

	return product, nil
}

// GetProduct retrieves a product by ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.NewNotFoundError(domainerrors.ErrProductNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

// UpdateProduct replaces the mutable fields of an existing product. Orders
// created before the update keep their snapshot line items untouched.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.NewNotFoundError(domainerrors.ErrProductNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	if err := srv.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.CategoryID = input.CategoryID
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.String("productID", product.ID.String()))

	return product, nil
}

// DeleteProduct removes a product by ID.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.DeleteProductByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.NewNotFoundError(domainerrors.ErrProductNotFound, id)
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id.String()))

	return nil
}

func (srv *productService) requireCategory(ctx context.Context, categoryID uuid.UUID) error {
	if _, err := srv.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.NewNotFoundError(domainerrors.ErrCategoryNotFound, categoryID)
		}

		return errors.Wrap(err, "failed to find category by ID")
	}

	return nil
}
