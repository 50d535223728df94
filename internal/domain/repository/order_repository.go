package repository

import (
	"context"

	"shoply/internal/domain/entity"
	"shoply/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
// Orders are only ever written as fully materialized aggregates: the caller
// provides snapshot line items and a computed total, never a partial patch.
type OrderRepository interface {
	// InsertOrder persists a new materialized order with its line items.
	InsertOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its line items by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrders retrieves all orders with their line items, newest first.
	FindOrders(ctx context.Context) ([]*entity.Order, error)

	// ReplaceOrder atomically replaces the stored order row and its full
	// line item set with the given aggregate. On success the entity's
	// CreatedAt and UpdatedAt are refreshed from the stored row.
	ReplaceOrder(ctx context.Context, order *entity.Order) error

	// DeleteOrderByID removes an order and its line items by its ID.
	DeleteOrderByID(ctx context.Context, id uuid.UUID) error
}
