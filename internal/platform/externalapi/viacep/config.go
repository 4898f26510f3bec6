// Package viacep provides a client for the ViaCEP postal-code lookup API.
package viacep

import (
	"os"
	"time"
)

// Config holds configuration for the ViaCEP client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://viacep.com.br")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads the ViaCEP configuration from environment variables,
// falling back to the public production endpoint.
func LoadConfig() Config {
	base := os.Getenv("VIACEP_BASE_URL")
	if base == "" {
		base = "https://viacep.com.br"
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
