// Package ibge reads municipality districts from the IBGE localities API.
package ibge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gestor-politico/internal/textnorm"
)

const DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

var ErrCityNotFound = errors.New("município não encontrado no IBGE")

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 20 * time.Second},
	}
}

type municipality struct {
	ID           int    `json:"id"`
	Name         string `json:"nome"`
	Microrregiao struct {
		Mesorregiao struct {
			UF struct {
				Sigla string `json:"sigla"`
			} `json:"UF"`
		} `json:"mesorregiao"`
	} `json:"microrregiao"`
}

type district struct {
	Name string `json:"nome"`
}

// Districts lists the district names of a municipality. The city may be
// written as "Campinas - SP", in which case the suffix wins over state.
func (c *Client) Districts(ctx context.Context, city, state string) ([]string, error) {
	city, state = splitState(city, state)

	id, err := c.findMunicipality(ctx, city, state)
	if err != nil {
		return nil, err
	}

	var ds []district
	if err := c.get(ctx, fmt.Sprintf("/municipios/%d/distritos", id), &ds); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ds))
	seen := map[string]bool{}
	for _, d := range ds {
		key := textnorm.Normalize(d.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, textnorm.CollapseSpaces(d.Name))
	}
	return names, nil
}

func (c *Client) findMunicipality(ctx context.Context, city, state string) (int, error) {
	var ms []municipality
	path := "/municipios?nome=" + url.QueryEscape(textnorm.StripAccents(city))
	if err := c.get(ctx, path, &ms); err != nil {
		return 0, err
	}
	want := textnorm.Normalize(city)
	for _, m := range ms {
		if textnorm.Normalize(m.Name) != want {
			continue
		}
		uf := m.Microrregiao.Mesorregiao.UF.Sigla
		if state == "" || strings.EqualFold(uf, state) {
			return m.ID, nil
		}
	}
	return 0, ErrCityNotFound
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ibge %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ibge %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ibge %s: %w", path, err)
	}
	return nil
}

func splitState(city, state string) (string, string) {
	city = strings.TrimSpace(city)
	if i := strings.LastIndex(city, "-"); i > 0 {
		suffix := strings.TrimSpace(city[i+1:])
		if len(suffix) == 2 {
			return strings.TrimSpace(city[:i]), strings.ToUpper(suffix)
		}
	}
	return city, strings.ToUpper(strings.TrimSpace(state))
}
