package usecase

import (
	"context"

	"controlastock_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the given ID.
	// It returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenRepository abstracts the issued-token store. Implementations exist for
// Redis (entries expire via TTL) and for the relational database (entries are
// pruned lazily on lookup).
type TokenRepository interface {
	// Save persists a freshly issued token.
	Save(ctx context.Context, token *entity.IssuedToken) error

	// FindByToken looks up an issued token by its raw string.
	// It returns ErrTokenNotFound when the token is absent or expired.
	FindByToken(ctx context.Context, raw string) (*entity.IssuedToken, error)

	// DeleteByToken removes an issued token, revoking it.
	// It returns ErrTokenNotFound when there is nothing to remove.
	DeleteByToken(ctx context.Context, raw string) error
}
