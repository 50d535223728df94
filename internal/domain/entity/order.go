package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return true
	}

	return false
}

// OrderLineItem is a point-in-time snapshot of a product taken when the
// order was created or last updated. Title and UnitPrice are copied by
// value from the product and are immutable once written; ProductID is kept
// for traceability only and is never re-resolved against the live catalog.
type OrderLineItem struct {
	ProductID uuid.UUID
	Title     string
	UnitPrice float64
	Quantity  int // >= 1
}

// Order is the materialized result of order validation: snapshot line items
// plus a server-computed total. Total always equals the sum of
// UnitPrice*Quantity over Items as of the last save and is never accepted
// from the client.
type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []OrderLineItem // Non-empty; product references unique within the order.
	Status    OrderStatus
	Note      string
	Total     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
