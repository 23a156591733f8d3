package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/cep"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"
	"gestor-politico/internal/textnorm"

	"github.com/jackc/pgx/v5"
)

var (
	findCity              = store.FindCity
	createCity            = store.CreateCity
	getNeighborhoodsByIDs = store.GetNeighborhoodsByIDs
)

// CreateCity returns the city with the same normalized name and state when it
// already exists. created reports whether a row was inserted.
func CreateCity(ctx context.Context, q database.Querier, name, state string) (city *model.City, created bool, err error) {
	name = textnorm.CollapseSpaces(name)
	state = strings.ToUpper(strings.TrimSpace(state))
	if name == "" {
		return nil, false, apperr.Validation("nome: informe o nome da cidade")
	}
	if len(state) != 2 {
		return nil, false, apperr.Validation("uf: informe a sigla do estado")
	}

	city, err = findCity(ctx, q, name, state)
	if err == nil {
		return city, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	city = &model.City{Name: name, State: state}
	if err := createCity(ctx, q, city); err != nil {
		if database.IsUniqueViolation(err) {
			// inserted concurrently
			city, err = findCity(ctx, q, name, state)
			return city, false, err
		}
		return nil, false, err
	}
	return city, true, nil
}

// CreateCityRegion adds a region to a city; duplicated names are a conflict.
func CreateCityRegion(ctx context.Context, q database.Querier, cityID int, name string) (*model.Region, error) {
	name = textnorm.CollapseSpaces(name)
	if name == "" {
		return nil, apperr.Validation("nome: informe o nome da região")
	}
	name = textnorm.Title(name)
	if _, err := getCityByID(ctx, q, cityID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("cidade %d não encontrada", cityID)
		}
		return nil, err
	}

	if _, err := findRegion(ctx, q, cityID, name); err == nil {
		return nil, apperr.Conflict("região %q já cadastrada nesta cidade", name)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	r := &model.Region{Name: name, CityID: cityID}
	if err := createRegion(ctx, q, r); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperr.Conflict("região %q já cadastrada nesta cidade", name)
		}
		return nil, err
	}
	return r, nil
}

// loadNeighborhoods fetches ids and checks that all exist and share one city.
func loadNeighborhoods(ctx context.Context, q database.Querier, ids []int) ([]model.Neighborhood, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, apperr.Validation("bairrosIds: informe ao menos um bairro")
	}
	list, err := getNeighborhoodsByIDs(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	if len(list) != len(ids) {
		found := map[int]bool{}
		for _, n := range list {
			found[n.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, apperr.NotFound("bairro %d não encontrado", id)
			}
		}
	}
	for _, n := range list[1:] {
		if n.CityID != list[0].CityID {
			return nil, apperr.Validation("bairrosIds: os bairros devem pertencer à mesma cidade")
		}
	}
	return list, nil
}

// AssignRegion points the given neighborhoods at an existing region.
func AssignRegion(ctx context.Context, db database.DB, regionID int, ids []int) (int64, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	region, err := getRegionByID(ctx, tx, regionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperr.NotFound("região %d não encontrada", regionID)
	}
	if err != nil {
		return 0, err
	}
	list, err := loadNeighborhoods(ctx, tx, ids)
	if err != nil {
		return 0, err
	}
	if list[0].CityID != region.CityID {
		return 0, apperr.Validation("bairrosIds: os bairros devem pertencer à cidade da região")
	}

	n, err := setNeighborhoodsRegion(ctx, tx, idsOf(list), &region.ID)
	if err != nil {
		return 0, err
	}
	return n, tx.Commit(ctx)
}

// UpdateNeighborhoodsRegion sets the region of several neighborhoods by id,
// by free name (reused or created), or clears it when neither is given.
func UpdateNeighborhoodsRegion(ctx context.Context, db database.DB, sess Session, req api.AssignRegionRequest) (int64, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	list, err := loadNeighborhoods(ctx, tx, req.NeighborhoodIDs)
	if err != nil {
		return 0, err
	}
	region, err := resolveRegion(ctx, tx, sess, list[0].CityID, localityInput{
		RegionID:  req.RegionID,
		NewRegion: valueOf(optional(req.FreeRegionName)),
	})
	if err != nil {
		return 0, writeErr(err)
	}
	var regionID *int
	if region != nil {
		regionID = &region.ID
	}

	n, err := setNeighborhoodsRegion(ctx, tx, idsOf(list), regionID)
	if err != nil {
		return 0, err
	}
	return n, tx.Commit(ctx)
}

// AddressLookup is a CEP answer bound to the local cities and neighborhoods.
type AddressLookup struct {
	CEP          string
	Street       string
	Neighborhood string
	Matched      *model.Neighborhood
	City         model.City
}

// LookupAddress queries the postal code service, creates the returned city
// when missing and matches the returned neighborhood against the city's ones.
func LookupAddress(ctx context.Context, q database.Querier, lookup CEPLookup, code string) (*AddressLookup, error) {
	a, err := lookup.Lookup(ctx, code)
	switch {
	case errors.Is(err, cep.ErrInvalid):
		return nil, apperr.Validation("cep: %v", err)
	case errors.Is(err, cep.ErrNotFound):
		return nil, apperr.NotFound("cep %s não encontrado", code)
	case err != nil:
		return nil, err
	}
	if a.City == "" || len(a.State) != 2 {
		return nil, apperr.NotFound("cep %s sem cidade associada", a.CEP)
	}

	city, created, err := CreateCity(ctx, q, a.City, a.State)
	if err != nil {
		return nil, err
	}
	if created {
		slog.Info("city created from cep lookup", "city", city.Name, "uf", city.State)
	}

	out := &AddressLookup{CEP: a.CEP, Street: a.Street, Neighborhood: a.Neighborhood, City: *city}
	if name := textnorm.CollapseSpaces(a.Neighborhood); name != "" {
		out.Matched, err = matchNeighborhood(ctx, q, city.ID, name)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func idsOf(list []model.Neighborhood) []int {
	ids := make([]int, len(list))
	for i, n := range list {
		ids[i] = n.ID
	}
	return ids
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id > 0 && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
