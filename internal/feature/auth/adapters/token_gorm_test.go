package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"controlastock_backend/internal/feature/auth/domain/entity"
	"controlastock_backend/internal/feature/auth/usecase"
)

func issuedToken(raw string, userID uint, expiresAt time.Time) *entity.IssuedToken {
	return &entity.IssuedToken{
		Token:     raw,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
}

func TestTokenGorm_Save(t *testing.T) {
	t.Run("persists the token row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenGorm(db)

		token := issuedToken("raw-token", 1, time.Now().Add(time.Hour))
		err := repo.Save(context.Background(), token)

		assert.NoError(t, err, "failed to save token")
		assert.NotZero(t, token.ID, "ID is not set")
		assert.False(t, token.CreatedAt.IsZero(), "CreatedAt is not set")
	})
}

func TestTokenGorm_FindByToken(t *testing.T) {
	t.Run("find a live token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenGorm(db)

		saved := issuedToken("live-token", 42, time.Now().Add(time.Hour))
		require.NoError(t, repo.Save(context.Background(), saved), "failed to save token")

		found, err := repo.FindByToken(context.Background(), "live-token")

		assert.NoError(t, err, "failed to find token")
		assert.NotNil(t, found, "token is nil")
		assert.Equal(t, saved.ID, found.ID, "ID does not match")
		assert.Equal(t, uint(42), found.UserID, "user ID does not match")
	})

	t.Run("unknown token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenGorm(db)

		found, err := repo.FindByToken(context.Background(), "never-issued")

		assert.Nil(t, found, "token should be nil")
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound, "should return ErrTokenNotFound")
	})

	t.Run("expired token is pruned on lookup", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenGorm(db)

		expired := issuedToken("stale-token", 1, time.Now().Add(-time.Minute))
		require.NoError(t, repo.Save(context.Background(), expired), "failed to save token")

		found, err := repo.FindByToken(context.Background(), "stale-token")

		assert.Nil(t, found, "token should be nil")
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound, "should return ErrTokenNotFound")

		// The row must be gone, not just hidden.
		var count int64
		db.Model(&entity.IssuedToken{}).Where("token = ?", "stale-token").Count(&count)
		assert.Zero(t, count, "expired row should have been deleted")
	})
}

func TestTokenGorm_DeleteByToken(t *testing.T) {
	t.Run("revokes an existing token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenGorm(db)

		saved := issuedToken("revocable", 1, time.Now().Add(time.Hour))
		require.NoError(t, repo.Save(context.Background(), saved), "failed to save token")

		err := repo.DeleteByToken(context.Background(), "revocable")
		assert.NoError(t, err, "failed to delete token")

		_, err = repo.FindByToken(context.Background(), "revocable")
		assert.ErrorIs(t, err, usecase.ErrTokenNotFound, "token should be gone after revocation")
	})

	t.Run("deleting an unknown token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenGorm(db)

		err := repo.DeleteByToken(context.Background(), "never-issued")

		assert.ErrorIs(t, err, usecase.ErrTokenNotFound, "should return ErrTokenNotFound")
	})
}
