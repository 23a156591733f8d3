package service

import (
	"context"
	"errors"
	"strings"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/cep"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"
	"gestor-politico/internal/textnorm"

	"github.com/jackc/pgx/v5"
)

// names closer than this are treated as the same neighborhood
const similarityThreshold = 0.9

var (
	getNeighborhoodByID    = store.GetNeighborhoodByID
	findNeighborhood       = store.FindNeighborhood
	listNeighborhoods      = store.ListNeighborhoods
	createNeighborhood     = store.CreateNeighborhood
	setNeighborhoodsRegion = store.SetNeighborhoodsRegion
	getRegionByID          = store.GetRegionByID
	findRegion             = store.FindRegion
	createRegion           = store.CreateRegion
)

type localityInput struct {
	NeighborhoodID  *int
	NewNeighborhood string
	RegionID        *int
	NewRegion       string
}

// resolveLocality maps the neighborhood and region inputs of a registration
// to an existing or new neighborhood of city. It returns nil when the
// registration carries no neighborhood at all.
func resolveLocality(ctx context.Context, q database.Querier, sess Session, city *model.City, in localityInput, lookup *cep.Address) (*model.Neighborhood, error) {
	if in.NeighborhoodID != nil {
		nb, err := getNeighborhoodByID(ctx, q, *in.NeighborhoodID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("bairroId: bairro %d não encontrado", *in.NeighborhoodID)
		}
		if err != nil {
			return nil, err
		}
		if nb.CityID != city.ID {
			return nil, apperr.Validation("bairroId: bairro %d não pertence à cidade %s", nb.ID, city.Name)
		}
		return nb, bindRegion(ctx, q, sess, nb, in)
	}

	name := in.NewNeighborhood
	if name == "" && lookup != nil && sameCity(city, lookup) {
		name = lookup.Neighborhood
	}
	name = textnorm.CollapseSpaces(name)
	if name == "" {
		return nil, nil
	}

	nb, err := matchNeighborhood(ctx, q, city.ID, name)
	if err != nil {
		return nil, err
	}
	if nb != nil {
		return nb, bindRegion(ctx, q, sess, nb, in)
	}

	if !sess.IsAdmin() && !suggestedByCEP(lookup, name) {
		return nil, apperr.Forbidden("apenas administradores podem cadastrar novos bairros")
	}
	region, err := resolveRegion(ctx, q, sess, city.ID, in)
	if err != nil {
		return nil, err
	}
	nb = &model.Neighborhood{Name: textnorm.Title(name), CityID: city.ID}
	if region != nil {
		nb.RegionID = &region.ID
		nb.RegionName = &region.Name
	}
	if err := createNeighborhood(ctx, q, nb); err != nil {
		return nil, err
	}
	return nb, nil
}

// bindRegion attaches the requested region to nb unless nb already has one.
func bindRegion(ctx context.Context, q database.Querier, sess Session, nb *model.Neighborhood, in localityInput) error {
	if nb.RegionID != nil {
		return nil
	}
	region, err := resolveRegion(ctx, q, sess, nb.CityID, in)
	if err != nil || region == nil {
		return err
	}
	if _, err := setNeighborhoodsRegion(ctx, q, []int{nb.ID}, &region.ID); err != nil {
		return err
	}
	nb.RegionID = &region.ID
	nb.RegionName = &region.Name
	return nil
}

func resolveRegion(ctx context.Context, q database.Querier, sess Session, cityID int, in localityInput) (*model.Region, error) {
	if in.RegionID != nil {
		r, err := getRegionByID(ctx, q, *in.RegionID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("regiaoId: região %d não encontrada", *in.RegionID)
		}
		if err != nil {
			return nil, err
		}
		if r.CityID != cityID {
			return nil, apperr.Validation("regiaoId: região %d não pertence à cidade", r.ID)
		}
		return r, nil
	}

	name := textnorm.CollapseSpaces(in.NewRegion)
	if name == "" {
		return nil, nil
	}
	r, err := findRegion(ctx, q, cityID, name)
	if err == nil {
		return r, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if !sess.IsAdmin() {
		return nil, apperr.Forbidden("apenas administradores podem cadastrar novas regiões")
	}
	r = &model.Region{Name: textnorm.Title(name), CityID: cityID}
	if err := createRegion(ctx, q, r); err != nil {
		return nil, err
	}
	return r, nil
}

// matchNeighborhood finds the neighborhood of the city that name refers to:
// an exact normalized match first, then the most similar name above the
// threshold. It returns nil when none qualifies.
func matchNeighborhood(ctx context.Context, q database.Querier, cityID int, name string) (*model.Neighborhood, error) {
	nb, err := findNeighborhood(ctx, q, cityID, name)
	if err == nil {
		return nb, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	all, err := listNeighborhoods(ctx, q, cityID, store.NeighborhoodFilter{})
	if err != nil {
		return nil, err
	}
	var (
		best      *model.Neighborhood
		bestScore float64
	)
	for i := range all {
		score := textnorm.Similarity(all[i].Name, name)
		if score >= similarityThreshold && score > bestScore {
			best, bestScore = &all[i], score
		}
	}
	return best, nil
}

func sameCity(city *model.City, a *cep.Address) bool {
	return textnorm.Normalize(city.Name) == textnorm.Normalize(a.City) &&
		strings.EqualFold(city.State, a.State)
}

func suggestedByCEP(a *cep.Address, name string) bool {
	return a != nil && a.Neighborhood != "" &&
		textnorm.Normalize(a.Neighborhood) == textnorm.Normalize(name)
}
