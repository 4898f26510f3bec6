// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user exists with the given ID or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when a profile change would reuse another
	// user's email.
	ErrEmailTaken = errors.New("email already in use by another user")
)
