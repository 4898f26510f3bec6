package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"controlastock_backend/internal/feature/auth/domain/entity"
	"controlastock_backend/internal/feature/auth/usecase"
)

// tokenGorm is the relational implementation of the TokenRepository interface.
// It is the fallback used when Redis is unavailable.
type tokenGorm struct {
	db *gorm.DB
}

// Compile-time check that tokenGorm implements TokenRepository.
var _ usecase.TokenRepository = (*tokenGorm)(nil)

// NewTokenGorm creates a new instance of tokenGorm on the given connection.
func NewTokenGorm(db *gorm.DB) *tokenGorm {
	return &tokenGorm{db: db}
}

// Save persists a freshly issued token row.
func (r *tokenGorm) Save(ctx context.Context, token *entity.IssuedToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindByToken looks up a token by its raw string. Expired rows are pruned
// lazily here: finding one deletes it and reports ErrTokenNotFound, so the
// store never needs a sweep job.
func (r *tokenGorm) FindByToken(ctx context.Context, raw string) (*entity.IssuedToken, error) {
	var t entity.IssuedToken
	if err := r.db.WithContext(ctx).Where("token = ?", raw).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	if t.IsExpired() {
		if err := r.db.WithContext(ctx).Delete(&entity.IssuedToken{}, t.ID).Error; err != nil {
			return nil, err
		}
		return nil, usecase.ErrTokenNotFound
	}
	return &t, nil
}

// DeleteByToken removes a token row, revoking the token.
func (r *tokenGorm) DeleteByToken(ctx context.Context, raw string) error {
	result := r.db.WithContext(ctx).Where("token = ?", raw).Delete(&entity.IssuedToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTokenNotFound
	}
	return nil
}
