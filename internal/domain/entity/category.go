package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. A category cannot be deleted while at least
// one product still references it; the category service enforces this.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
