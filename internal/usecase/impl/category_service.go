package impl

import (
	"context"
	"fmt"
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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories retrieves all categories.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	return categories, nil
}

// CreateCategory creates a new category.
func (srv *categoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	category := &entity.Category{Name: name}

	if err := srv.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("categoryID", category.ID.String()))

	return category, nil
}

// GetCategory retrieves a category by ID.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.NewNotFoundError(domainerrors.ErrCategoryNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return category, nil
}

// UpdateCategory renames an existing category.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.NewNotFoundError(domainerrors.ErrCategoryNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	category.Name = name
	if err := srv.categoryRepo.UpdateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// DeleteCategory removes a category. The dependent-product check runs
// before the existence check: deleting a category that still has products
// is refused as a conflict even when a later lookup would have 404ed.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	dependents, err := srv.productRepo.FindProductsByCategory(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find products by category")
	}
	if len(dependents) > 0 {
		return domainerrors.ErrCategoryHasProducts.WithDetails(
			fmt.Sprintf("category is referenced by %d product(s)", len(dependents)))
	}

	if err := srv.categoryRepo.DeleteCategoryByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.NewNotFoundError(domainerrors.ErrCategoryNotFound, id)
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("categoryID", id.String()))

	return nil
}
