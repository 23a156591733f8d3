// Package cep looks up Brazilian postal codes on BrasilAPI (v2).
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gestor-politico/internal/cache"
	"gestor-politico/internal/textnorm"
)

const DefaultBaseURL = "https://brasilapi.com.br/api/cep/v2/"

var (
	ErrInvalid  = errors.New("cep deve conter 8 dígitos")
	ErrNotFound = errors.New("cep não encontrado")
)

// Address is the part of the BrasilAPI answer the service uses.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	IBGECode     string `json:"city_ibge,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
}

// NewClient builds a client; a nil cache disables caching.
func NewClient(baseURL string, c cache.Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   c,
		ttl:     30 * 24 * time.Hour,
	}
}

// Sanitize strips everything but digits and checks the length.
func Sanitize(raw string) (string, error) {
	d := textnorm.Digits(raw)
	if len(d) != 8 {
		return "", ErrInvalid
	}
	return d, nil
}

func (c *Client) Lookup(ctx context.Context, raw string) (*Address, error) {
	code, err := Sanitize(raw)
	if err != nil {
		return nil, err
	}

	key := cache.Key("cep", code)
	if c.cache != nil {
		var a Address
		ok, err := cache.GetJSON(ctx, c.cache, key, &a)
		if ok {
			return &a, nil
		}
		if err != nil {
			slog.Warn("cep cache read failed", "cep", code, "error", err)
		}
	}

	a, err := c.fetch(ctx, code)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := cache.SetJSON(ctx, c.cache, key, a, c.ttl); err != nil {
			slog.Warn("cep cache write failed", "cep", code, "error", err)
		}
	}
	return a, nil
}

func (c *Client) fetch(ctx context.Context, code string) (*Address, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+code, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cep lookup %s: %w", code, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("cep lookup %s: unexpected status %d", code, resp.StatusCode)
	}

	var a Address
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		return nil, fmt.Errorf("cep lookup %s: %w", code, err)
	}
	a.CEP = code
	a.State = strings.ToUpper(strings.TrimSpace(a.State))
	return &a, nil
}
