package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	cepentity "controlastock_backend/internal/feature/cep/domain/entity"
	"controlastock_backend/internal/feature/cep/usecase"
	"controlastock_backend/internal/platform/externalapi/viacep/dto"
)

// Client is the CepRepository implementation backed by the ViaCEP public API.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements CepRepository.
var _ usecase.CepRepository = (*Client)(nil)

// NewClient creates a new instance of Client with the given configuration and
// HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Fetch resolves a normalized 8-digit postal code against the provider.
// A provider-reported "erro" flag maps to usecase.ErrCEPNotFound; transport
// failures are returned wrapped for the caller to classify as a gateway error.
func (c *Client) Fetch(ctx context.Context, cep string) (*cepentity.Endereco, error) {
	u := fmt.Sprintf("%s/ws/%s/json/", c.cfg.BaseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep request: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("viacep http %d", res.StatusCode)
	}

	var body dto.EnderecoResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("viacep decode: %w", err)
	}
	if body.NotFound() {
		return nil, usecase.ErrCEPNotFound
	}

	return &cepentity.Endereco{
		Cep:         body.Cep,
		Logradouro:  body.Logradouro,
		Complemento: body.Complemento,
		Bairro:      body.Bairro,
		Localidade:  body.Localidade,
		UF:          body.UF,
	}, nil
}
