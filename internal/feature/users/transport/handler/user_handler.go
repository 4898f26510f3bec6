// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"controlastock_backend/internal/feature/auth/domain/entity"
	authdto "controlastock_backend/internal/feature/auth/transport/http/dto"
	"controlastock_backend/internal/feature/users/transport/http/dto"
	"controlastock_backend/internal/feature/users/usecase"
	jwtmw "controlastock_backend/internal/platform/jwt"
	"controlastock_backend/internal/shared/authz"
)

// UserUsecase defines the user operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	UpdateProfile(ctx context.Context, id uint, patch usecase.ProfilePatch) (*entity.User, error)
	UpdateByID(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.User, error)
	DeleteByID(ctx context.Context, id uint) error
}

// UserHandler handles HTTP requests under /api/usuarios. All routes run
// behind the auth middleware; authorization is decided by the authz package.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
	case errors.Is(err, usecase.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "O e-mail informado já está em uso por outro usuário."})
	default:
		slog.Error("user operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
	}
}

// Perfil handles GET /api/usuarios/perfil, returning the caller's own view.
func (h *UserHandler) Perfil(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	c.JSON(http.StatusOK, authdto.UserRespFromEntity(user))
}

// UpdatePerfil handles PUT /api/usuarios/perfil. Only the fields present in
// the body are applied.
func (h *UserHandler) UpdatePerfil(c *gin.Context) {
	user, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	var req dto.ProfileUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.users.UpdateProfile(c.Request.Context(), user.ID, usecase.ProfilePatch{
		Nome:  req.Nome,
		Cnpj:  req.Cnpj,
		Cep:   req.Cep,
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}
	slog.Info("profile updated", "user_id", user.ID)
	c.JSON(http.StatusOK, authdto.UserRespFromEntity(updated))
}

// List handles GET /api/usuarios. Admin only.
func (h *UserHandler) List(c *gin.Context) {
	actor, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if !authz.CanListUsers(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Acesso restrito a administradores"})
		return
	}
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondUserError(c, err)
		return
	}
	out := make([]authdto.UserResp, len(users))
	for i := range users {
		out[i] = authdto.UserRespFromEntity(&users[i])
	}
	c.JSON(http.StatusOK, out)
}

// UpdateByID handles PUT /api/usuarios/:id. Self or admin.
func (h *UserHandler) UpdateByID(c *gin.Context) {
	actor, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	if !authz.CanManageUser(actor, uint(id)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Operação permitida apenas ao próprio usuário"})
		return
	}
	var req dto.UserUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.users.UpdateByID(c.Request.Context(), uint(id), usecase.UpdateInput{
		Nome:  req.Nome,
		Cnpj:  req.Cnpj,
		Cep:   req.Cep,
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}
	slog.Info("user updated", "user_id", id, "actor_id", actor.ID)
	c.JSON(http.StatusOK, authdto.UserRespFromEntity(updated))
}

// DeleteByID handles DELETE /api/usuarios/:id. Self or admin. Items and
// issued tokens of the deleted user are removed by the database cascade.
func (h *UserHandler) DeleteByID(c *gin.Context) {
	actor, ok := jwtmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	if !authz.CanManageUser(actor, uint(id)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Operação permitida apenas ao próprio usuário"})
		return
	}
	if err := h.users.DeleteByID(c.Request.Context(), uint(id)); err != nil {
		respondUserError(c, err)
		return
	}
	slog.Info("user deleted", "user_id", id, "actor_id", actor.ID)
	c.Status(http.StatusNoContent)
}
