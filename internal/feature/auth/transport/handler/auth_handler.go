// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"controlastock_backend/internal/feature/auth/domain/entity"
	"controlastock_backend/internal/feature/auth/transport/http/dto"
	"controlastock_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user account.
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login authenticates a user and returns a bearer token on success.
	Login(ctx context.Context, email, senha string) (*usecase.LoginResult, error)
	// Logout revokes the presented token.
	Logout(ctx context.Context, raw string) error
}

// AuthHandler handles HTTP requests for registration, login and logout.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Registrar handles POST /auth/registrar.
// Returns 201 with the user view (no password), 400 on validation failure
// and 409 when the email is already in use.
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Nome:  req.Nome,
		Cnpj:  req.Cnpj,
		Cep:   req.Cep,
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "O e-mail informado já está em uso."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erro ao registrar usuário"})
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.UserRespFromEntity(user))
}

// Login handles POST /auth/login.
// Returns 200 with {token, tipo, expiresIn} or 401 on bad credentials.
// The actual failure cause is not exposed to prevent user enumeration.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginResp{
		Token:     result.Token,
		Tipo:      "Bearer",
		ExpiresIn: int64(time.Until(result.ExpiresAt).Round(time.Second).Seconds()),
	})
}

// Logout handles POST /auth/logout. It revokes the bearer token presented in
// the Authorization header. Revoking an already revoked token returns 204 as
// well; logout is idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.auth.Logout(c.Request.Context(), raw); err != nil && !errors.Is(err, usecase.ErrTokenNotFound) {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao encerrar sessão"})
		return
	}
	c.Status(http.StatusNoContent)
}
