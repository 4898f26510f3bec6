// Package usecase implements the business logic for the inventory feature.
package usecase

import "errors"

var (
	// ErrItemNotFound is returned when no item exists with the given ID.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotOwner is returned when the caller tries to access an item owned by
	// another user.
	ErrNotOwner = errors.New("item belongs to another user")

	// ErrInsufficientQuantity is returned when a removal would drive the
	// quantity negative. The quantity is unchanged after the failed call.
	ErrInsufficientQuantity = errors.New("quantity to remove exceeds current stock")

	// ErrInvalidDelta is returned when a quantity adjustment is not a positive amount.
	ErrInvalidDelta = errors.New("quantity delta must be positive")
)
