// Package entity defines the domain entities for the inventory feature.
package entity

import (
	"strings"
	"time"

	authentity "controlastock_backend/internal/feature/auth/domain/entity"
)

// DefaultLocalizacao is substituted when an item is created or updated with a
// blank location.
const DefaultLocalizacao = "Estoque Principal"

// Item represents an inventory item. Every item belongs to exactly one user,
// who exclusively owns read/write/delete rights over it.
type Item struct {
	ID uint `gorm:"primaryKey"`

	// Nome is the item name.
	Nome string `gorm:"size:255;not null"`

	// Descricao is an optional free-text description.
	Descricao string `gorm:"size:500"`

	// Quantidade is the stock count. It is never negative.
	Quantidade int `gorm:"not null"`

	// Localizacao is the storage location, never blank after default substitution.
	Localizacao string `gorm:"size:255;not null"`

	// UserID references the owning user. Deleting the user cascades here.
	UserID uint            `gorm:"index;not null"`
	User   authentity.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (Item) TableName() string {
	return "itens_inventario"
}

// OwnedBy reports whether the item belongs to the given user.
func (i *Item) OwnedBy(userID uint) bool {
	return i.UserID == userID
}

// NormalizeLocalizacao applies the default location when the current value is blank.
func NormalizeLocalizacao(localizacao string) string {
	if strings.TrimSpace(localizacao) == "" {
		return DefaultLocalizacao
	}
	return localizacao
}
