package repository

import (
	"context"

	"shoply/internal/domain/entity"
	"shoply/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID retrieves a category by its unique ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindCategories retrieves all categories.
	FindCategories(ctx context.Context) ([]*entity.Category, error)

	// UpdateCategory persists changes to an existing category.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// DeleteCategoryByID removes a category by its ID.
	// Dependent-product checks are the category service's responsibility,
	// not the store's.
	DeleteCategoryByID(ctx context.Context, id uuid.UUID) error
}
