package service

import (
	"context"
	"log/slog"
	"time"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/geocode"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"
	"gestor-politico/internal/worker"
)

// BackfillLimit caps how many addresses one backfill run geocodes.
const BackfillLimit = 500

var (
	getGeoAddress                   = store.GetGeoAddress
	setAddressCoordinates           = store.SetAddressCoordinates
	listAddressesWithoutCoordinates = store.ListAddressesWithoutCoordinates
)

// Locator resolves an address to coordinates; *geocode.Client implements it.
type Locator interface {
	Locate(ctx context.Context, a model.GeoAddress) (*geocode.Point, error)
}

// Geocoding fills address coordinates in the background, off the request path.
type Geocoding struct {
	db      database.DB
	locator Locator
	pool    worker.Pool
	timeout time.Duration
}

func NewGeocoding(db database.DB, locator Locator, pool worker.Pool) *Geocoding {
	return &Geocoding{db: db, locator: locator, pool: pool, timeout: 30 * time.Second}
}

// Enqueue schedules one address without blocking. It reports false when the
// queue is full; the address stays without coordinates until a backfill.
func (g *Geocoding) Enqueue(addressID int) bool {
	return g.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		defer cancel()
		if err := g.Geocode(ctx, addressID); err != nil {
			slog.Warn("geocoding failed", "address_id", addressID, "error", err)
		}
	})
}

// Geocode looks one address up and stores its coordinates when found.
func (g *Geocoding) Geocode(ctx context.Context, addressID int) error {
	a, err := getGeoAddress(ctx, g.db, addressID)
	if err != nil {
		return err
	}
	p, err := g.locator.Locate(ctx, *a)
	if err != nil {
		return err
	}
	if p == nil {
		slog.Info("address not found by geocoder", "address_id", addressID)
		return nil
	}
	return setAddressCoordinates(ctx, g.db, addressID, p.Lat, p.Lon)
}

// Backfill queues a single task that geocodes every address still missing
// coordinates, up to BackfillLimit. It returns how many addresses the task
// will visit.
func (g *Geocoding) Backfill(ctx context.Context) (int, error) {
	ids, err := listAddressesWithoutCoordinates(ctx, g.db, BackfillLimit)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	ok := g.pool.TrySubmit(func() {
		done := 0
		for _, id := range ids {
			ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
			err := g.Geocode(ctx, id)
			cancel()
			if err != nil {
				slog.Warn("geocoding failed", "address_id", id, "error", err)
				continue
			}
			done++
		}
		slog.Info("geocoding backfill finished", "addresses", len(ids), "ok", done)
	})
	if !ok {
		return 0, apperr.Conflict("fila de geocodificação cheia, tente novamente mais tarde")
	}
	return len(ids), nil
}
