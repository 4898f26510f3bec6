package usecase

import (
	"context"

	"controlastock_backend/internal/feature/inventory/domain/entity"
)

// ItemRepository abstracts the persistence layer for inventory items.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ItemRepository interface {
	// FindAllByUser lists every item owned by the given user.
	FindAllByUser(ctx context.Context, userID uint) ([]entity.Item, error)

	// FindByID retrieves an item by ID. It returns ErrItemNotFound when
	// no such item exists.
	FindByID(ctx context.Context, id uint) (*entity.Item, error)

	// Create persists a new item.
	Create(ctx context.Context, item *entity.Item) error

	// Save writes back every field of an existing item.
	Save(ctx context.Context, item *entity.Item) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id uint) error

	// AdjustQuantity applies a signed delta to the item's quantity as one
	// atomic operation. It returns ErrInsufficientQuantity when the result
	// would be negative, leaving the quantity unchanged.
	AdjustQuantity(ctx context.Context, id uint, delta int) (*entity.Item, error)
}

// ItemInput carries the validated fields of an item create/update request.
type ItemInput struct {
	Nome        string
	Descricao   string
	Quantidade  int
	Localizacao string
}

// itemUsecase implements the inventory business rules. Every operation that
// touches an existing item performs an ownership check first.
type itemUsecase struct {
	items ItemRepository
}

// NewItemUsecase creates a new instance of itemUsecase.
func NewItemUsecase(items ItemRepository) *itemUsecase {
	return &itemUsecase{items: items}
}

// List returns the items owned by the given user.
func (u *itemUsecase) List(ctx context.Context, ownerID uint) ([]entity.Item, error) {
	return u.items.FindAllByUser(ctx, ownerID)
}

// findOwned loads an item and enforces ownership.
func (u *itemUsecase) findOwned(ctx context.Context, id, ownerID uint) (*entity.Item, error) {
	item, err := u.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.OwnedBy(ownerID) {
		return nil, ErrNotOwner
	}
	return item, nil
}

// GetByID returns the item when it exists and belongs to the caller.
func (u *itemUsecase) GetByID(ctx context.Context, id, ownerID uint) (*entity.Item, error) {
	return u.findOwned(ctx, id, ownerID)
}

// Create builds an item from the input, substitutes the default location when
// blank and assigns the caller as owner.
func (u *itemUsecase) Create(ctx context.Context, in ItemInput, ownerID uint) (*entity.Item, error) {
	item := &entity.Item{
		Nome:        in.Nome,
		Descricao:   in.Descricao,
		Quantidade:  in.Quantidade,
		Localizacao: entity.NormalizeLocalizacao(in.Localizacao),
		UserID:      ownerID,
	}
	if err := u.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update overwrites nome, descricao, quantidade and localizacao (with default
// substitution) after the ownership check.
func (u *itemUsecase) Update(ctx context.Context, id uint, in ItemInput, ownerID uint) (*entity.Item, error) {
	item, err := u.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	item.Nome = in.Nome
	item.Descricao = in.Descricao
	item.Quantidade = in.Quantidade
	item.Localizacao = entity.NormalizeLocalizacao(in.Localizacao)

	if err := u.items.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes the item after the ownership check.
func (u *itemUsecase) Remove(ctx context.Context, id, ownerID uint) error {
	item, err := u.findOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return u.items.Delete(ctx, item.ID)
}

// AddQuantity increases the item's quantity by delta (> 0).
func (u *itemUsecase) AddQuantity(ctx context.Context, id uint, delta int, ownerID uint) (*entity.Item, error) {
	if delta <= 0 {
		return nil, ErrInvalidDelta
	}
	if _, err := u.findOwned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	return u.items.AdjustQuantity(ctx, id, delta)
}

// RemoveQuantity decreases the item's quantity by delta (> 0). It fails with
// ErrInsufficientQuantity when delta exceeds the current quantity; the
// quantity is unchanged after a failed call.
func (u *itemUsecase) RemoveQuantity(ctx context.Context, id uint, delta int, ownerID uint) (*entity.Item, error) {
	if delta <= 0 {
		return nil, ErrInvalidDelta
	}
	if _, err := u.findOwned(ctx, id, ownerID); err != nil {
		return nil, err
	}
	return u.items.AdjustQuantity(ctx, id, -delta)
}
