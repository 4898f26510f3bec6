// Package handler provides the HTTP handlers for the cep feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"controlastock_backend/internal/feature/cep/domain/entity"
	"controlastock_backend/internal/feature/cep/usecase"
)

// CepUsecase defines the lookup operation consumed by this handler.
type CepUsecase interface {
	Lookup(ctx context.Context, raw string) (*entity.Endereco, error)
}

// CepHandler handles the public GET /api/cep/:cep route.
type CepHandler struct {
	cep CepUsecase
}

// NewCepHandler creates a new instance of CepHandler.
func NewCepHandler(cep CepUsecase) *CepHandler {
	return &CepHandler{cep: cep}
}

// Buscar handles GET /api/cep/:cep.
// 400 on a malformed code, 404 when the provider reports no match, 502 when
// the provider cannot be reached.
func (h *CepHandler) Buscar(c *gin.Context) {
	endereco, err := h.cep.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCEP):
			c.JSON(http.StatusBadRequest, gin.H{"error": "CEP deve ter 8 dígitos"})
		case errors.Is(err, usecase.ErrCEPNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "CEP não encontrado"})
		default:
			slog.Error("cep lookup failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Erro ao consultar CEP"})
		}
		return
	}
	c.JSON(http.StatusOK, endereco)
}
