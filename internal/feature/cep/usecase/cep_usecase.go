package usecase

import (
	"context"
	"strings"

	"controlastock_backend/internal/feature/cep/domain/entity"
)

// CepRepository abstracts the postal-code lookup backend (the external ViaCEP
// client, optionally wrapped by the Redis caching decorator). Following Go
// convention: interfaces are defined by the consumer (usecase), not the
// provider (platform/externalapi).
type CepRepository interface {
	// Fetch resolves a normalized 8-digit code, returning ErrCEPNotFound when
	// the provider reports no match.
	Fetch(ctx context.Context, cep string) (*entity.Endereco, error)
}

// RateLimiter throttles outbound lookups.
type RateLimiter interface {
	WaitIfNeeded()
}

// cepUsecase validates postal codes and delegates the lookup.
type cepUsecase struct {
	repo    CepRepository
	limiter RateLimiter
}

// NewCepUsecase creates a new instance of cepUsecase. limiter may be nil.
func NewCepUsecase(repo CepRepository, limiter RateLimiter) *cepUsecase {
	return &cepUsecase{repo: repo, limiter: limiter}
}

// stripNonDigits keeps only the decimal digits of s.
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lookup strips punctuation from the input, requires exactly 8 digits and
// resolves the address through the configured backend.
func (u *cepUsecase) Lookup(ctx context.Context, raw string) (*entity.Endereco, error) {
	cep := stripNonDigits(raw)
	if len(cep) != 8 {
		return nil, ErrInvalidCEP
	}

	if u.limiter != nil {
		u.limiter.WaitIfNeeded()
	}
	return u.repo.Fetch(ctx, cep)
}
