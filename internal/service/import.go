package service

import (
	"context"
	"errors"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/ibge"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"
	"gestor-politico/internal/textnorm"

	"github.com/jackc/pgx/v5"
)

// DistrictSource lists the districts of a municipality; *ibge.Client implements it.
type DistrictSource interface {
	Districts(ctx context.Context, city, state string) ([]string, error)
}

type ImportResult struct {
	CityID   int
	Inserted int
	Skipped  int
}

// ImportNeighborhoods creates one neighborhood per district of the city,
// skipping names that already exist once normalized.
func ImportNeighborhoods(ctx context.Context, db database.DB, src DistrictSource, cityID int) (*ImportResult, error) {
	city, err := getCityByID(ctx, db, cityID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("cidade %d não encontrada", cityID)
	}
	if err != nil {
		return nil, err
	}

	names, err := src.Districts(ctx, city.Name, city.State)
	if errors.Is(err, ibge.ErrCityNotFound) {
		return nil, apperr.NotFound("%s/%s não encontrada no IBGE", city.Name, city.State)
	}
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	existing, err := listNeighborhoods(ctx, tx, city.ID, store.NeighborhoodFilter{})
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(existing))
	for _, n := range existing {
		known[textnorm.Normalize(n.Name)] = true
	}

	res := &ImportResult{CityID: city.ID}
	for _, name := range names {
		key := textnorm.Normalize(name)
		if key == "" || known[key] {
			res.Skipped++
			continue
		}
		known[key] = true
		if err := createNeighborhood(ctx, tx, &model.Neighborhood{Name: textnorm.Title(name), CityID: city.ID}); err != nil {
			return nil, err
		}
		res.Inserted++
	}
	return res, tx.Commit(ctx)
}
