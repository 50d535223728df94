package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Name and price are mutable after orders
// referencing the product exist; orders therefore copy both into their
// line items instead of joining back to the product at read time.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64 // Non-negative.
	CategoryID  uuid.UUID
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
