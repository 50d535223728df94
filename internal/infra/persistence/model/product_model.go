package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. CategoryID references categories.id.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Price       float64   `gorm:"not null;check:price >= 0"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
