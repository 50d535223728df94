package usecase

import (
	"context"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput carries the fields accepted when creating or updating a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  uuid.UUID
	IsActive    *bool
}

// ProductUsecase defines the interface for product management use cases.
type ProductUsecase interface {
	// ListProducts retrieves all products, optionally filtered by category.
	// An unknown category filter falls back to the unfiltered list.
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error)

	// CreateProduct creates a new product after verifying the referenced
	// category exists.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// GetProduct retrieves a product by ID.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// UpdateProduct replaces the mutable fields of an existing product
	// after verifying the referenced category exists.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product by ID. Existing orders keep their
	// snapshot line items.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
