// Package tokenstore provides the Redis implementation of the issued-token store.
package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"controlastock_backend/internal/feature/auth/domain/entity"
	"controlastock_backend/internal/feature/auth/usecase"
)

// TokenRedis implements usecase.TokenRepository using Redis. Entries carry a
// TTL equal to the token lifetime, so expired tokens vanish without a sweep
// job.
type TokenRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check that TokenRedis implements TokenRepository.
var _ usecase.TokenRepository = (*TokenRedis)(nil)

// NewTokenRedis creates a new TokenRedis instance.
func NewTokenRedis(client *redis.Client, prefix string) *TokenRedis {
	return &TokenRedis{client: client, prefix: prefix}
}

// tokenKey returns the Redis key for an issued token.
func (r *TokenRedis) tokenKey(raw string) string {
	return fmt.Sprintf("%s:%s", r.prefix, raw)
}

// Save persists a freshly issued token with a TTL matching its expiry.
func (r *TokenRedis) Save(ctx context.Context, token *entity.IssuedToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("token already expired")
	}
	return r.client.Set(ctx, r.tokenKey(token.Token), data, ttl).Err()
}

// FindByToken looks up an issued token by its raw string.
func (r *TokenRedis) FindByToken(ctx context.Context, raw string) (*entity.IssuedToken, error) {
	data, err := r.client.Get(ctx, r.tokenKey(raw)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}

	var token entity.IssuedToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}
	return &token, nil
}

// DeleteByToken removes an issued token, revoking it.
func (r *TokenRedis) DeleteByToken(ctx context.Context, raw string) error {
	n, err := r.client.Del(ctx, r.tokenKey(raw)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return usecase.ErrTokenNotFound
	}
	return nil
}
