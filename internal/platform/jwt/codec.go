// Package jwtmw provides JWT signing/verification and the Gin middleware that
// gates authenticated routes.
package jwtmw

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// defaultIssuer is the fixed issuer claim stamped on every token.
const defaultIssuer = "CONTROLASTOCKER"

// Config holds the signing configuration. It is constructed once at process
// start and passed by reference; nothing in this package reads the
// environment after LoadConfig.
type Config struct {
	Secret string        // HMAC signing secret
	Issuer string        // iss claim
	TTL    time.Duration // token lifetime
}

// LoadConfig loads the signing configuration from environment variables.
// TOKEN_TTL_MINUTES defaults to 60.
func LoadConfig() Config {
	ttl := 60
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return Config{
		Secret: os.Getenv("JWT_SECRET"),
		Issuer: defaultIssuer,
		TTL:    time.Duration(ttl) * time.Minute,
	}
}

// Codec signs and verifies HS256 tokens carrying issuer, subject and expiry.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewCodec creates a new Codec from the given configuration.
func NewCodec(cfg Config) *Codec {
	return &Codec{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
	}
}

// GenerateToken creates a signed token whose subject is the given email.
func (c *Codec) GenerateToken(email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseSubject verifies signature, issuer and expiry and returns the subject
// email. Only HMAC signatures are accepted.
func (c *Codec) ParseSubject(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithIssuer(c.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}
