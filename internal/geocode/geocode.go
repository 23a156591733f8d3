// Package geocode resolves street addresses to coordinates using Nominatim.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gestor-politico/internal/cache"
	"gestor-politico/internal/model"
	"gestor-politico/internal/textnorm"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org/search"
	DefaultUserAgent = "gestor-politico/1.0 (contato@gestorpolitico.com)"

	// value stored for queries Nominatim has no answer for
	missMarker = "-"
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	cache     cache.Cache
	limiter   *rate.Limiter
	group     singleflight.Group
	hitTTL    time.Duration
	missTTL   time.Duration
}

// NewClient builds a client limited to one request per second, the
// Nominatim usage policy.
func NewClient(baseURL, userAgent string, c cache.Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: 15 * time.Second},
		cache:     c,
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		hitTTL:    90 * 24 * time.Hour,
		missTTL:   24 * time.Hour,
	}
}

// Locate tries every query built for the address and returns the first hit.
// A nil point with a nil error means nothing matched.
func (c *Client) Locate(ctx context.Context, a model.GeoAddress) (*Point, error) {
	for _, q := range Queries(a) {
		p, err := c.Search(ctx, q)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}
	return nil, nil
}

// Search geocodes a single free-text query.
func (c *Client) Search(ctx context.Context, query string) (*Point, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	key := cache.Key("geo", strings.ToLower(query))

	if c.cache != nil {
		v, err := c.cache.Get(ctx, key).Result()
		switch {
		case err == nil && v == missMarker:
			return nil, nil
		case err == nil:
			var p Point
			if json.Unmarshal([]byte(v), &p) == nil {
				return &p, nil
			}
		case !errors.Is(err, redis.Nil):
			slog.Warn("geocode cache read failed", "query", query, "error", err)
		}
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.fetch(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	p, _ := v.(*Point)
	c.store(ctx, key, p)
	return p, nil
}

func (c *Client) store(ctx context.Context, key string, p *Point) {
	if c.cache == nil {
		return
	}
	var (
		val any = missMarker
		ttl     = c.missTTL
	)
	if p != nil {
		b, err := json.Marshal(p)
		if err != nil {
			return
		}
		val, ttl = b, c.hitTTL
	}
	if err := c.cache.Set(ctx, key, val, ttl).Err(); err != nil {
		slog.Warn("geocode cache write failed", "key", key, "error", err)
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *Client) fetch(ctx context.Context, query string) (*Point, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("addressdetails", "0")
	params.Set("countrycodes", "br")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "pt-BR")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode %q: unexpected status %d", query, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: lat: %w", query, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: lon: %w", query, err)
	}
	return &Point{Lat: lat, Lon: lon}, nil
}

var stateNames = map[string]string{
	"AC": "Acre", "AL": "Alagoas", "AP": "Amapa", "AM": "Amazonas",
	"BA": "Bahia", "CE": "Ceara", "DF": "Distrito Federal", "ES": "Espirito Santo",
	"GO": "Goias", "MA": "Maranhao", "MT": "Mato Grosso", "MS": "Mato Grosso do Sul",
	"MG": "Minas Gerais", "PA": "Para", "PB": "Paraiba", "PR": "Parana",
	"PE": "Pernambuco", "PI": "Piaui", "RJ": "Rio de Janeiro", "RN": "Rio Grande do Norte",
	"RS": "Rio Grande do Sul", "RO": "Rondonia", "RR": "Roraima", "SC": "Santa Catarina",
	"SP": "Sao Paulo", "SE": "Sergipe", "TO": "Tocantins",
}

// Queries builds the search strings for an address, most specific first.
// The second one drops the neighborhood, which Nominatim often does not know.
func Queries(a model.GeoAddress) []string {
	state := strings.ToUpper(strings.TrimSpace(a.State))
	if name, ok := stateNames[state]; ok {
		state = name
	}
	street := strings.TrimSpace(a.Street)
	if n := strings.TrimSpace(a.Number); n != "" && street != "" {
		street += " " + n
	}

	full := cleanQuery(street, a.Neighborhood, a.City, state, "Brasil")
	if strings.TrimSpace(a.Neighborhood) == "" {
		return []string{full}
	}
	return []string{full, cleanQuery(street, a.City, state, "Brasil")}
}

func cleanQuery(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Map(func(r rune) rune {
			switch r {
			case ',', ';', '-', '.', '/', '(', ')':
				return ' '
			}
			return r
		}, textnorm.StripAccents(p))
		if p = textnorm.CollapseSpaces(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
