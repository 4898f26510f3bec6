package tokenstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"controlastock_backend/internal/feature/auth/domain/entity"
	"controlastock_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

// createTestToken creates an issued token for testing.
func createTestToken(raw string, userID uint, expiresIn time.Duration) *entity.IssuedToken {
	now := time.Now()
	return &entity.IssuedToken{
		Token:     raw,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestNewTokenRedis(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewTokenRedis(client, "token")

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.client, "client is nil")
	assert.Equal(t, "token", repo.prefix)
}

func TestTokenRedis_Save(t *testing.T) {
	t.Run("stores the token with a TTL", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		repo := NewTokenRedis(client, "token")

		token := createTestToken("raw-token", 1, time.Hour)
		err := repo.Save(context.Background(), token)

		assert.NoError(t, err, "failed to save token")
		assert.True(t, mr.Exists("token:raw-token"), "key should exist")

		ttl := mr.TTL("token:raw-token")
		assert.Greater(t, ttl, 59*time.Minute, "TTL should match the token lifetime")
		assert.LessOrEqual(t, ttl, time.Hour, "TTL should not exceed the token lifetime")
	})

	t.Run("already expired token is rejected", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewTokenRedis(client, "token")

		token := createTestToken("stale-token", 1, -time.Minute)
		err := repo.Save(context.Background(), token)

		assert.Error(t, err, "should reject an expired token")
	})
}

func TestTokenRedis_FindByToken(t *testing.T) {
	t.Run("find a live token", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewTokenRedis(client, "token")

		saved := createTestToken("live-token", 42, time.Hour)
		require.NoError(t, repo.Save(context.Background(), saved), "failed to save token")

		found, err := repo.FindByToken(context.Background(), "live-token")

		assert.NoError(t, err, "failed to find token")
		assert.NotNil(t, found, "token is nil")
		assert.Equal(t, "live-token", found.Token, "token string does not match")
		assert.Equal(t, uint(42), found.UserID, "user ID does not match")
	})

	t.Run("unknown token", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewTokenRedis(client, "token")

		found, err := repo.FindByToken(context.Background(), "never-issued")

		assert.Nil(t, found, "token should be nil")
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound, "should return ErrTokenNotFound")
	})

	t.Run("expired token vanishes via TTL", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		repo := NewTokenRedis(client, "token")

		saved := createTestToken("short-token", 1, time.Minute)
		require.NoError(t, repo.Save(context.Background(), saved), "failed to save token")

		// miniredis only expires keys when the clock is advanced manually.
		mr.FastForward(2 * time.Minute)

		found, err := repo.FindByToken(context.Background(), "short-token")

		assert.Nil(t, found, "token should be nil")
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound, "should return ErrTokenNotFound")
	})
}

func TestTokenRedis_DeleteByToken(t *testing.T) {
	t.Run("revokes an existing token", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewTokenRedis(client, "token")

		saved := createTestToken("revocable", 1, time.Hour)
		require.NoError(t, repo.Save(context.Background(), saved), "failed to save token")

		err := repo.DeleteByToken(context.Background(), "revocable")
		assert.NoError(t, err, "failed to delete token")

		_, err = repo.FindByToken(context.Background(), "revocable")
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound, "token should be gone after revocation")
	})

	t.Run("deleting an unknown token", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		repo := NewTokenRedis(client, "token")

		err := repo.DeleteByToken(context.Background(), "never-issued")

		assert.ErrorIs(t, err, usecase.ErrTokenNotFound, "should return ErrTokenNotFound")
	})
}
