package repository

import (
	"context"

	"shoply/internal/domain/entity"
	"shoply/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductsByIDs retrieves all products matching the given IDs in a
	// single query. Missing IDs are simply absent from the result; callers
	// decide how to report them.
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindProducts retrieves all products.
	FindProducts(ctx context.Context) ([]*entity.Product, error)

	// FindProductsByCategory retrieves all products referencing the given category.
	FindProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error)

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProductByID removes a product by its ID.
	DeleteProductByID(ctx context.Context, id uuid.UUID) error
}
