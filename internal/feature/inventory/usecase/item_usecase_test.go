package usecase

import (
	"context"
	"errors"
	"testing"

	"controlastock_backend/internal/feature/inventory/domain/entity"
)

// mockItemRepository is a mock implementation of the ItemRepository interface.
type mockItemRepository struct {
	FindAllByUserFunc  func(ctx context.Context, userID uint) ([]entity.Item, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.Item, error)
	CreateFunc         func(ctx context.Context, item *entity.Item) error
	SaveFunc           func(ctx context.Context, item *entity.Item) error
	DeleteFunc         func(ctx context.Context, id uint) error
	AdjustQuantityFunc func(ctx context.Context, id uint, delta int) (*entity.Item, error)
}

func (m *mockItemRepository) FindAllByUser(ctx context.Context, userID uint) ([]entity.Item, error) {
	if m.FindAllByUserFunc != nil {
		return m.FindAllByUserFunc(ctx, userID)
	}
	return nil, nil // Default: empty list
}

func (m *mockItemRepository) FindByID(ctx context.Context, id uint) (*entity.Item, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrItemNotFound // Default: not found
}

func (m *mockItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil // Default: success
}

func (m *mockItemRepository) Save(ctx context.Context, item *entity.Item) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil // Default: success
}

func (m *mockItemRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil // Default: success
}

func (m *mockItemRepository) AdjustQuantity(ctx context.Context, id uint, delta int) (*entity.Item, error) {
	if m.AdjustQuantityFunc != nil {
		return m.AdjustQuantityFunc(ctx, id, delta)
	}
	return nil, ErrItemNotFound // Default: not found
}

func ownedItem() *entity.Item {
	return &entity.Item{
		ID:          10,
		Nome:        "Parafuso M6",
		Descricao:   "Caixa com 100 unidades",
		Quantidade:  5,
		Localizacao: "Prateleira A",
		UserID:      1,
	}
}

func TestItemUsecase_Create(t *testing.T) {
	t.Run("assigns owner and keeps given location", func(t *testing.T) {
		var created *entity.Item
		mockRepo := &mockItemRepository{
			CreateFunc: func(ctx context.Context, item *entity.Item) error {
				created = item
				return nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		in := ItemInput{Nome: "Parafuso M6", Quantidade: 5, Localizacao: "Prateleira A"}
		item, err := uc.Create(context.Background(), in, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.UserID != 1 {
			t.Errorf("expected owner 1, got %d", item.UserID)
		}
		if created.Localizacao != "Prateleira A" {
			t.Errorf("location was rewritten: %s", created.Localizacao)
		}
	})

	t.Run("blank location falls back to the default", func(t *testing.T) {
		mockRepo := &mockItemRepository{}
		uc := NewItemUsecase(mockRepo)

		item, err := uc.Create(context.Background(), ItemInput{Nome: "Porca M6", Localizacao: "   "}, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Localizacao != entity.DefaultLocalizacao {
			t.Errorf("expected %q, got %q", entity.DefaultLocalizacao, item.Localizacao)
		}
	})
}

func TestItemUsecase_GetByID(t *testing.T) {
	t.Run("owner can read the item", func(t *testing.T) {
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		item, err := uc.GetByID(context.Background(), 10, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 10 {
			t.Errorf("unexpected item: %+v", item)
		}
	})

	t.Run("other users are rejected", func(t *testing.T) {
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		_, err := uc.GetByID(context.Background(), 10, 2)

		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got: %v", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		mockRepo := &mockItemRepository{}
		uc := NewItemUsecase(mockRepo)

		_, err := uc.GetByID(context.Background(), 99, 1)

		if !errors.Is(err, ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got: %v", err)
		}
	})
}

func TestItemUsecase_Update(t *testing.T) {
	t.Run("overwrites all editable fields", func(t *testing.T) {
		var saved *entity.Item
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
			SaveFunc: func(ctx context.Context, item *entity.Item) error {
				saved = item
				return nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		in := ItemInput{Nome: "Parafuso M8", Descricao: "Nova caixa", Quantidade: 3, Localizacao: ""}
		item, err := uc.Update(context.Background(), 10, in, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved == nil {
			t.Fatal("item was not saved")
		}
		if item.Nome != "Parafuso M8" || item.Quantidade != 3 {
			t.Errorf("fields not updated: %+v", item)
		}
		if item.Localizacao != entity.DefaultLocalizacao {
			t.Errorf("blank location should fall back to the default, got %q", item.Localizacao)
		}
		if item.UserID != 1 {
			t.Errorf("owner must not change on update, got %d", item.UserID)
		}
	})

	t.Run("other users cannot update", func(t *testing.T) {
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
			SaveFunc: func(ctx context.Context, item *entity.Item) error {
				t.Error("Save should not be called for a foreign item")
				return nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		_, err := uc.Update(context.Background(), 10, ItemInput{Nome: "x"}, 2)

		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got: %v", err)
		}
	})
}

func TestItemUsecase_Remove(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		deleted := uint(0)
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		err := uc.Remove(context.Background(), 10, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 10 {
			t.Errorf("expected item 10 to be deleted, got %d", deleted)
		}
	})

	t.Run("other users cannot delete", func(t *testing.T) {
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				t.Error("Delete should not be called for a foreign item")
				return nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		err := uc.Remove(context.Background(), 10, 2)

		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got: %v", err)
		}
	})
}

func TestItemUsecase_AddQuantity(t *testing.T) {
	t.Run("applies a positive delta", func(t *testing.T) {
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
			AdjustQuantityFunc: func(ctx context.Context, id uint, delta int) (*entity.Item, error) {
				if delta != 3 {
					t.Errorf("expected delta 3, got %d", delta)
				}
				item := ownedItem()
				item.Quantidade += delta
				return item, nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		item, err := uc.AddQuantity(context.Background(), 10, 3, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantidade != 8 {
			t.Errorf("expected quantity 8, got %d", item.Quantidade)
		}
	})

	t.Run("zero delta is rejected", func(t *testing.T) {
		uc := NewItemUsecase(&mockItemRepository{})

		_, err := uc.AddQuantity(context.Background(), 10, 0, 1)

		if !errors.Is(err, ErrInvalidDelta) {
			t.Errorf("expected ErrInvalidDelta, got: %v", err)
		}
	})
}

func TestItemUsecase_RemoveQuantity(t *testing.T) {
	t.Run("applies a negative delta", func(t *testing.T) {
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
			AdjustQuantityFunc: func(ctx context.Context, id uint, delta int) (*entity.Item, error) {
				if delta != -2 {
					t.Errorf("expected delta -2, got %d", delta)
				}
				item := ownedItem()
				item.Quantidade += delta
				return item, nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		item, err := uc.RemoveQuantity(context.Background(), 10, 2, 1)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantidade != 3 {
			t.Errorf("expected quantity 3, got %d", item.Quantidade)
		}
	})

	t.Run("removal beyond current stock", func(t *testing.T) {
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
			AdjustQuantityFunc: func(ctx context.Context, id uint, delta int) (*entity.Item, error) {
				return nil, ErrInsufficientQuantity
			},
		}
		uc := NewItemUsecase(mockRepo)

		_, err := uc.RemoveQuantity(context.Background(), 10, 100, 1)

		if !errors.Is(err, ErrInsufficientQuantity) {
			t.Errorf("expected ErrInsufficientQuantity, got: %v", err)
		}
	})

	t.Run("negative delta is rejected", func(t *testing.T) {
		uc := NewItemUsecase(&mockItemRepository{})

		_, err := uc.RemoveQuantity(context.Background(), 10, -5, 1)

		if !errors.Is(err, ErrInvalidDelta) {
			t.Errorf("expected ErrInvalidDelta, got: %v", err)
		}
	})

	t.Run("other users cannot adjust quantity", func(t *testing.T) {
		mockRepo := &mockItemRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Item, error) {
				return ownedItem(), nil
			},
			AdjustQuantityFunc: func(ctx context.Context, id uint, delta int) (*entity.Item, error) {
				t.Error("AdjustQuantity should not be called for a foreign item")
				return nil, nil
			},
		}
		uc := NewItemUsecase(mockRepo)

		_, err := uc.RemoveQuantity(context.Background(), 10, 1, 2)

		if !errors.Is(err, ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got: %v", err)
		}
	})
}
