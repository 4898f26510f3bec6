// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"controlastock_backend/internal/feature/cep/domain/entity"
	"controlastock_backend/internal/feature/cep/usecase"
)

// CachingCepRepository decorates a CepRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Postal-code data changes rarely, so
// hits avoid a round trip to the external provider entirely.
type CachingCepRepository struct {
	inner     usecase.CepRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still implements CepRepository.
var _ usecase.CepRepository = (*CachingCepRepository)(nil)

// NewCachingCepRepository decorates a CepRepository with Redis caching.
// If ttl is 0, it defaults to 24 hours. If namespace is empty, it uses "cep".
func NewCachingCepRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CepRepository, namespace string) *CachingCepRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = "cep"
	}
	return &CachingCepRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingCepRepository) cacheKey(cep string) string {
	return fmt.Sprintf("%s:%s", c.namespace, cep)
}

// Fetch checks the cache first and falls back to the inner repository.
// Only successful lookups are cached; not-found and transport errors always
// go back to the provider.
func (c *CachingCepRepository) Fetch(ctx context.Context, cep string) (*entity.Endereco, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Fetch(ctx, cep)
	}

	key := c.cacheKey(cep)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Endereco
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Corrupt entry: fall through to the provider and overwrite it.
	}

	// 2) Miss: ask the provider
	endereco, err := c.inner.Fetch(ctx, cep)
	if err != nil {
		return nil, err
	}

	// 3) Populate cache. Best effort: a cache write failure never fails the lookup.
	if b, err := json.Marshal(endereco); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return endereco, nil
}
