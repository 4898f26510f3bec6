// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "controlastock_backend/internal/feature/auth/adapters"
	"controlastock_backend/internal/feature/auth/usecase"
	"controlastock_backend/internal/platform/tokenstore"
)

// NewTokenRepository creates a TokenRepository implementation.
// If Redis is available, it returns a Redis-backed implementation whose
// entries expire via TTL. Otherwise, it falls back to the relational store,
// which prunes expired rows lazily on lookup.
func NewTokenRepository(rdb *redis.Client, db *gorm.DB) usecase.TokenRepository {
	if rdb != nil {
		return tokenstore.NewTokenRedis(rdb, "token")
	}
	return authadapters.NewTokenGorm(db)
}
