// Package handler provides the HTTP handlers for the inventory feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"controlastock_backend/internal/feature/inventory/domain/entity"
	"controlastock_backend/internal/feature/inventory/transport/http/dto"
	"controlastock_backend/internal/feature/inventory/usecase"
	jwtmw "controlastock_backend/internal/platform/jwt"
)

// ItemUsecase defines the inventory operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ItemUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Item, error)
	GetByID(ctx context.Context, id, ownerID uint) (*entity.Item, error)
	Create(ctx context.Context, in usecase.ItemInput, ownerID uint) (*entity.Item, error)
	Update(ctx context.Context, id uint, in usecase.ItemInput, ownerID uint) (*entity.Item, error)
	Remove(ctx context.Context, id, ownerID uint) error
	AddQuantity(ctx context.Context, id uint, delta int, ownerID uint) (*entity.Item, error)
	RemoveQuantity(ctx context.Context, id uint, delta int, ownerID uint) (*entity.Item, error)
}

// ItemHandler handles HTTP requests under /api/inventario. Every route runs
// behind the auth middleware; the owner is always the authenticated caller.
type ItemHandler struct {
	items ItemUsecase
}

// NewItemHandler creates a new instance of ItemHandler.
func NewItemHandler(items ItemUsecase) *ItemHandler {
	return &ItemHandler{items: items}
}

// itemID parses the :id path parameter.
func itemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return uint(id), true
}

// quantidadeParam parses the ?quantidade=N query parameter as a positive integer.
func quantidadeParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Query("quantidade"))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantidade deve ser um inteiro positivo"})
		return 0, false
	}
	return n, true
}

// respondItemError maps usecase failures to status codes.
func respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado"})
	case errors.Is(err, usecase.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Item pertence a outro usuário"})
	case errors.Is(err, usecase.ErrInsufficientQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantidade a ser removida é maior que o estoque atual."})
	case errors.Is(err, usecase.ErrInvalidDelta):
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantidade deve ser um inteiro positivo"})
	default:
		slog.Error("inventory operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
	}
}

// List handles GET /api/inventario.
func (h *ItemHandler) List(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	items, err := h.items.List(c.Request.Context(), user.ID)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemRespListFromEntities(items))
}

// GetByID handles GET /api/inventario/:id.
func (h *ItemHandler) GetByID(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	id, ok := itemID(c)
	if !ok {
		return
	}
	item, err := h.items.GetByID(c.Request.Context(), id, user.ID)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemRespFromEntity(item))
}

// Create handles POST /api/inventario.
func (h *ItemHandler) Create(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	var req dto.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.items.Create(c.Request.Context(), itemInput(req), user.ID)
	if err != nil {
		respondItemError(c, err)
		return
	}
	slog.Info("item created", "item_id", item.ID, "user_id", user.ID)
	c.JSON(http.StatusCreated, dto.ItemRespFromEntity(item))
}

// Update handles PUT /api/inventario/:id.
func (h *ItemHandler) Update(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req dto.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.items.Update(c.Request.Context(), id, itemInput(req), user.ID)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemRespFromEntity(item))
}

// Remove handles DELETE /api/inventario/:id.
func (h *ItemHandler) Remove(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	id, ok := itemID(c)
	if !ok {
		return
	}
	if err := h.items.Remove(c.Request.Context(), id, user.ID); err != nil {
		respondItemError(c, err)
		return
	}
	slog.Info("item removed", "item_id", id, "user_id", user.ID)
	c.Status(http.StatusNoContent)
}

// AddQuantity handles PUT /api/inventario/:id/adicionar?quantidade=N.
func (h *ItemHandler) AddQuantity(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	id, ok := itemID(c)
	if !ok {
		return
	}
	delta, ok := quantidadeParam(c)
	if !ok {
		return
	}
	item, err := h.items.AddQuantity(c.Request.Context(), id, delta, user.ID)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemRespFromEntity(item))
}

// RemoveQuantity handles PUT /api/inventario/:id/remover?quantidade=N.
func (h *ItemHandler) RemoveQuantity(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	id, ok := itemID(c)
	if !ok {
		return
	}
	delta, ok := quantidadeParam(c)
	if !ok {
		return
	}
	item, err := h.items.RemoveQuantity(c.Request.Context(), id, delta, user.ID)
	if err != nil {
		respondItemError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ItemRespFromEntity(item))
}

func itemInput(req dto.ItemReq) usecase.ItemInput {
	return usecase.ItemInput{
		Nome:        req.Nome,
		Descricao:   req.Descricao,
		Quantidade:  req.Quantidade,
		Localizacao: req.Localizacao,
	}
}
