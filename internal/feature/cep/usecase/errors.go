// Package usecase implements the business logic for the cep feature.
package usecase

import "errors"

var (
	// ErrInvalidCEP is returned when the input does not reduce to exactly 8 digits.
	ErrInvalidCEP = errors.New("cep must have 8 digits")

	// ErrCEPNotFound is returned when the provider reports no match for the code.
	ErrCEPNotFound = errors.New("cep not found")
)
