package usecase

import (
	"context"
	"log/slog"
	"time"

	"controlastock_backend/internal/feature/auth/domain/entity"
)

// TokenCodec signs and verifies the compact claims object carried by a bearer
// token. Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (platform/jwt).
type TokenCodec interface {
	// GenerateToken creates a signed token whose subject is the given email.
	GenerateToken(email string) (raw string, expiresAt time.Time, err error)

	// ParseSubject verifies signature, issuer and expiry, returning the
	// subject email on success.
	ParseSubject(raw string) (email string, err error)
}

// TokenService issues and verifies bearer tokens. A token carries identity
// claims, but authority is still gated by a lookup in the issued-token store:
// deleting the row revokes the token server-side.
type TokenService struct {
	codec  TokenCodec
	tokens TokenRepository
	users  UserRepository
}

// NewTokenService creates a new instance of TokenService.
func NewTokenService(codec TokenCodec, tokens TokenRepository, users UserRepository) *TokenService {
	return &TokenService{codec: codec, tokens: tokens, users: users}
}

// Issue signs a token for the user and records it in the issued-token store.
func (s *TokenService) Issue(ctx context.Context, user *entity.User) (string, time.Time, error) {
	raw, expiresAt, err := s.codec.GenerateToken(user.Email)
	if err != nil {
		return "", time.Time{}, err
	}

	record := &entity.IssuedToken{
		Token:     raw,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
	if err := s.tokens.Save(ctx, record); err != nil {
		return "", time.Time{}, err
	}
	return raw, expiresAt, nil
}

// Verify resolves a raw bearer token back to its user.
//
// Every failure collapses to ErrInvalidToken so the caller cannot learn
// whether the signature, the issuer, the expiry, the store lookup or the
// user lookup failed. The specific cause is logged for operability.
func (s *TokenService) Verify(ctx context.Context, raw string) (*entity.User, error) {
	email, err := s.codec.ParseSubject(raw)
	if err != nil {
		slog.Warn("token verification failed", "stage", "claims", "error", err)
		return nil, ErrInvalidToken
	}

	// A cryptographically valid token is still rejected when its row is
	// gone from the store. This is what makes server-side revocation work.
	if _, err := s.tokens.FindByToken(ctx, raw); err != nil {
		slog.Warn("token verification failed", "stage", "store", "error", err)
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		slog.Warn("token verification failed", "stage", "user", "error", err)
		return nil, ErrInvalidToken
	}
	return user, nil
}

// Revoke deletes the token row, invalidating the token for future requests.
func (s *TokenService) Revoke(ctx context.Context, raw string) error {
	return s.tokens.DeleteByToken(ctx, raw)
}
