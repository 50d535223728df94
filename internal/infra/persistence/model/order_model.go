package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. UserID references users.id.
type OrderModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Note      string    `gorm:"type:varchar(500)"`
	Total     float64   `gorm:"not null;check:total >= 0"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Rows are snapshot line
// items owned by their order: title and unit_price are frozen copies of the
// product at materialization time, and product_id is traceability only (no
// foreign key into products, so catalog deletions cannot break history).
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"type:varchar(255);not null"`
	UnitPrice float64   `gorm:"not null;check:unit_price >= 0"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
	Position  int       `gorm:"not null"` // Preserves input order of the line items.
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
