package usecase

import (
	"context"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase defines the interface for category management use cases.
type CategoryUsecase interface {
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)

	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// UpdateCategory renames an existing category.
	UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error)

	// DeleteCategory removes a category by ID. Deletion is refused while
	// any product still references the category.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
