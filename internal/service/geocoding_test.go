package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/geocode"
	"gestor-politico/internal/model"
	"gestor-politico/internal/worker"

	"github.com/stretchr/testify/require"
)

type fakeLocator struct {
	points map[string]*geocode.Point
	err    error
}

func (f fakeLocator) Locate(_ context.Context, a model.GeoAddress) (*geocode.Point, error) {
	return f.points[a.Street], f.err
}

type coordRecorder struct {
	mu    sync.Mutex
	saved map[int]geocode.Point
}

func (r *coordRecorder) install() {
	r.saved = map[int]geocode.Point{}
	getGeoAddress = func(_ context.Context, _ database.Querier, id int) (*model.GeoAddress, error) {
		streets := map[int]string{1: "Rua A", 2: "Rua B", 3: "Rua C"}
		return &model.GeoAddress{AddressID: id, Street: streets[id], City: "São Paulo", State: "SP"}, nil
	}
	setAddressCoordinates = func(_ context.Context, _ database.Querier, id int, lat, lon float64) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.saved[id] = geocode.Point{Lat: lat, Lon: lon}
		return nil
	}
}

func TestGeocode(t *testing.T) {
	t.Cleanup(restoreGlobals)
	rec := &coordRecorder{}
	rec.install()
	loc := fakeLocator{points: map[string]*geocode.Point{"Rua A": {Lat: -23.5, Lon: -46.6}}}
	g := NewGeocoding(&database.FakeDB{}, loc, nil)

	require.NoError(t, g.Geocode(context.Background(), 1))
	require.Equal(t, geocode.Point{Lat: -23.5, Lon: -46.6}, rec.saved[1])

	// not found is not an error and stores nothing
	require.NoError(t, g.Geocode(context.Background(), 2))
	require.NotContains(t, rec.saved, 2)

	g = NewGeocoding(&database.FakeDB{}, fakeLocator{err: errors.New("offline")}, nil)
	require.Error(t, g.Geocode(context.Background(), 1))
}

func TestEnqueueAndBackfill(t *testing.T) {
	t.Cleanup(restoreGlobals)
	rec := &coordRecorder{}
	rec.install()
	loc := fakeLocator{points: map[string]*geocode.Point{
		"Rua A": {Lat: 1, Lon: 1},
		"Rua C": {Lat: 3, Lon: 3},
	}}
	listAddressesWithoutCoordinates = func(_ context.Context, _ database.Querier, limit int) ([]int, error) {
		require.Equal(t, BackfillLimit, limit)
		return []int{1, 2, 3}, nil
	}

	pool := worker.NewPool(1, 4)
	g := NewGeocoding(&database.FakeDB{}, loc, pool)
	require.True(t, g.Enqueue(1))
	n, err := g.Backfill(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, n)
	pool.Stop()

	require.Len(t, rec.saved, 2)
	require.Equal(t, 3.0, rec.saved[3].Lat)
}

func TestBackfillQueueFull(t *testing.T) {
	t.Cleanup(restoreGlobals)
	listAddressesWithoutCoordinates = func(context.Context, database.Querier, int) ([]int, error) {
		return []int{1}, nil
	}
	pool := worker.NewPool(1, 0)
	block := make(chan struct{})
	started := make(chan struct{})
	pool.Submit(func() {
		close(started)
		<-block
	})
	<-started

	g := NewGeocoding(&database.FakeDB{}, fakeLocator{}, pool)
	_, err := g.Backfill(context.Background())
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	require.False(t, g.Enqueue(1))

	close(block)
	pool.Stop()

	listAddressesWithoutCoordinates = func(context.Context, database.Querier, int) ([]int, error) {
		return nil, nil
	}
	n, err := g.Backfill(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}
