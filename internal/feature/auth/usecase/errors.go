// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenNotFound is returned when a token has no row in the issued-token store.
	ErrTokenNotFound = errors.New("token not found")

	// ErrInvalidToken is the single outcome of every verification failure
	// (bad signature, wrong issuer, expired, revoked, unknown subject).
	// Callers must not be able to tell which sub-case occurred.
	ErrInvalidToken = errors.New("invalid token")
)
