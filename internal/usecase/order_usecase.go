package usecase

import (
	"context"

	"shoply/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemRef is the untrusted input shape of an order line: a product
// reference plus a quantity. Clients may also send titles or prices, but
// those never enter this shape — the trusted snapshot is always rebuilt
// from the live catalog server-side.
type OrderItemRef struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput carries the fields accepted when creating an order.
type CreateOrderInput struct {
	UserID uuid.UUID
	Items  []OrderItemRef
	Status *entity.OrderStatus // Defaults to pending when nil.
	Note   *string
}

// UpdateOrderInput carries the fields accepted when updating an order.
// UserID and Items are always re-validated and re-snapshotted in full;
// nil Status/Note retain the previously stored values.
type UpdateOrderInput struct {
	UserID uuid.UUID
	Items  []OrderItemRef
	Status *entity.OrderStatus
	Note   *string
}

// OrderUsecase defines the interface for order management use cases.
// Create and update materialize the order: referenced entities are
// verified, product data is snapshotted, and the total is recomputed —
// orders are never written through any other path.
type OrderUsecase interface {
	// ListOrders retrieves all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// CreateOrder validates and materializes a new order.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order by ID.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateOrder re-validates and re-materializes an existing order
	// against current catalog data.
	UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error)

	// DeleteOrder removes an order by ID with no effect on the catalog.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
