package localities

import (
	"context"
	"errors"
	"strconv"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/service"
	"gestor-politico/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	listCities                = store.ListCities
	getCityByID               = store.GetCityByID
	listRegions               = store.ListRegions
	listNeighborhoods         = store.ListNeighborhoods
	createCity                = service.CreateCity
	createCityRegion          = service.CreateCityRegion
	assignRegion              = service.AssignRegion
	updateNeighborhoodsRegion = service.UpdateNeighborhoodsRegion
	unifyNeighborhoods        = service.UnifyNeighborhoods
	importNeighborhoods       = service.ImportNeighborhoods
	lookupAddress             = service.LookupAddress
)

func pathID(raw, name string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("%s inválido", name)
	}
	return id, nil
}

// cityFromPath resolves :cidadeId to an existing city.
func cityFromPath(ctx context.Context, db database.Querier, raw string) (*model.City, error) {
	id, err := pathID(raw, "cidadeId")
	if err != nil {
		return nil, err
	}
	city, err := getCityByID(ctx, db, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("cidade %d não encontrada", id)
	}
	return city, err
}

func cityResponse(c model.City) api.CityResponse {
	return api.CityResponse{ID: c.ID, Name: c.Name, State: c.State}
}

func neighborhoodResponse(n model.Neighborhood) api.NeighborhoodResponse {
	return api.NeighborhoodResponse{ID: n.ID, Name: n.Name, RegionID: n.RegionID, Region: n.RegionName}
}
