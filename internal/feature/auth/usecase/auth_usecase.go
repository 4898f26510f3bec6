package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"controlastock_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6
)

// RegisterInput carries the validated fields of a registration request.
type RegisterInput struct {
	Nome  string
	Cnpj  string
	Cep   string
	Email string
	Senha string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// authUsecase implements the registration and login business logic.
type authUsecase struct {
	users  UserRepository
	tokens *TokenService
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens *TokenService) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// validatePassword checks the password against the security requirements.
func validatePassword(senha string) error {
	if len(senha) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password and the default role.
// It returns ErrEmailAlreadyExists when the email is taken.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validatePassword(in.Senha); err != nil {
		return nil, err
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Nome:  in.Nome,
		Cnpj:  in.Cnpj,
		Cep:   in.Cep,
		Email: in.Email,
		Senha: string(hashed),
		Role:  entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and issues a bearer token on success.
// To mitigate timing attacks, the bcrypt comparison runs even when the user
// does not exist.
func (u *authUsecase) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash so bcrypt.CompareHashAndPassword is always executed.
	senhaHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		senhaHash = user.Senha
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(senhaHash), []byte(senha))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.Issue(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the presented token.
func (u *authUsecase) Logout(ctx context.Context, raw string) error {
	return u.tokens.Revoke(ctx, raw)
}
