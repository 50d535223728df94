// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a customer account. Orders reference users by identity
// only; order logic never mutates user data.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string // Unique login/contact address.
	PasswordHash string // bcrypt hash; never serialized in responses.
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
