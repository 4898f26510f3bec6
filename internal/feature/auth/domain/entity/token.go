package entity

import "time"

// IssuedToken is the server-side record of a token handed out at login.
// A bearer token is only honored while its row exists: deleting the row
// revokes the token even though its signature still verifies.
type IssuedToken struct {
	ID uint `gorm:"primaryKey"`

	// Token is the raw signed token string as returned to the client.
	Token string `gorm:"size:1000;index;not null"`

	// UserID references the user the token was issued for.
	UserID uint `gorm:"index;not null"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time

	// ExpiresAt mirrors the exp claim so expired rows can be pruned
	// without re-parsing the token.
	ExpiresAt time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (IssuedToken) TableName() string {
	return "tokens"
}

// IsExpired returns true if the token has passed its expiration time.
func (t *IssuedToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
