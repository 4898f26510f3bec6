// Package adapters provides repository implementations for the inventory feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"controlastock_backend/internal/feature/inventory/domain/entity"
	"controlastock_backend/internal/feature/inventory/usecase"
)

// itemGorm is the relational implementation of the ItemRepository interface.
type itemGorm struct {
	db *gorm.DB
}

// Compile-time check that itemGorm implements ItemRepository.
var _ usecase.ItemRepository = (*itemGorm)(nil)

// NewItemGorm creates a new instance of itemGorm on the given connection.
func NewItemGorm(db *gorm.DB) *itemGorm {
	return &itemGorm{db: db}
}

// FindAllByUser lists every item owned by the given user, oldest first.
func (r *itemGorm) FindAllByUser(ctx context.Context, userID uint) ([]entity.Item, error) {
	var items []entity.Item
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID retrieves an item by ID.
// It returns usecase.ErrItemNotFound when the item does not exist.
func (r *itemGorm) FindByID(ctx context.Context, id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create persists a new item.
func (r *itemGorm) Create(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Save writes back every column of an existing item.
func (r *itemGorm) Save(ctx context.Context, item *entity.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an item by ID.
func (r *itemGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// AdjustQuantity applies the delta with a single conditional UPDATE so a
// concurrent adjustment can never drive the quantity negative.
func (r *itemGorm) AdjustQuantity(ctx context.Context, id uint, delta int) (*entity.Item, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Item{}).
		Where("id = ? AND quantidade + ? >= 0", id, delta).
		Update("quantidade", gorm.Expr("quantidade + ?", delta))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or the guard rejected the delta.
		if _, err := r.FindByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, usecase.ErrInsufficientQuantity
	}
	return r.FindByID(ctx, id)
}
