// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles assignable to a user. Every registration gets RoleUser;
// RoleAdmin accounts are only created by the seeder CLI.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User represents a registered account in the system.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Nome is the user's display name.
	Nome string `gorm:"size:255;not null"`

	// Cnpj is the tax identifier, stored as 14 bare digits.
	Cnpj string `gorm:"size:14;not null"`

	// Cep is the postal code, stored as 8 bare digits.
	Cep string `gorm:"size:8;not null"`

	// Email is the login identity. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Senha is the bcrypt hash of the password.
	// This must never store a plaintext password.
	Senha string `gorm:"size:255;not null"`

	// Role is the authorization tag (RoleUser or RoleAdmin).
	Role string `gorm:"size:32;not null;default:ROLE_USER"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "usuarios"
}

// IsAdmin reports whether the user carries the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
