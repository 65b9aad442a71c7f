// Package cep looks up Brazilian postal codes against a ViaCEP-compatible
// service. The lookup is best-effort address enrichment: checkout never
// requires it to succeed.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"nexus-store/internal/pkg/config"
	"nexus-store/internal/pkg/errs"
)

type Address struct {
	Cep          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	NotFound     bool   `json:"erro,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.CepConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

var nonDigit = regexp.MustCompile(`[^0-9]`)

// Sanitize strips formatting; a valid CEP is exactly 8 digits.
func Sanitize(raw string) (string, bool) {
	digits := nonDigit.ReplaceAllString(raw, "")
	return digits, len(digits) == 8
}

// Lookup resolves a CEP. A service miss maps to ErrCepNotFound; transport
// failures map to ErrCepUnavailable so callers can surface a non-blocking
// notification and leave prior field values untouched.
func (c *Client) Lookup(ctx context.Context, rawCep string) (*Address, error) {
	digits, ok := Sanitize(rawCep)
	if !ok {
		return nil, errs.Mark(errs.New("cep must have 8 digits"), errs.ErrCepNotFound)
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build cep request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCepUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(errs.New(resp.Status), errs.ErrCepUnavailable)
	}

	var addr Address
	if err := json.NewDecoder(resp.Body).Decode(&addr); err != nil {
		return nil, errs.Mark(err, errs.ErrCepUnavailable)
	}
	if addr.NotFound {
		return nil, errs.ErrCepNotFound
	}
	return &addr, nil
}
