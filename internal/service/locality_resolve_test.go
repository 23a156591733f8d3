package service

import (
	"context"
	"fmt"
	"testing"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/cep"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

var saoPaulo = &model.City{ID: 1, Name: "São Paulo", State: "SP"}

// stubLocalities serves neighborhoods and regions from memory.
type stubLocalities struct {
	neighborhoods []model.Neighborhood
	regions       []model.Region
	created       []model.Neighborhood
	createdRegion []model.Region
	assigned      map[int]int
}

func (s *stubLocalities) install() {
	s.assigned = map[int]int{}
	getNeighborhoodByID = func(_ context.Context, _ database.Querier, id int) (*model.Neighborhood, error) {
		for _, n := range s.neighborhoods {
			if n.ID == id {
				return &n, nil
			}
		}
		return nil, fmt.Errorf("GetNeighborhoodByID: %w", pgx.ErrNoRows)
	}
	findNeighborhood = func(_ context.Context, _ database.Querier, cityID int, name string) (*model.Neighborhood, error) {
		for _, n := range s.neighborhoods {
			if n.CityID == cityID && n.Name == name {
				return &n, nil
			}
		}
		return nil, fmt.Errorf("FindNeighborhood: %w", pgx.ErrNoRows)
	}
	listNeighborhoods = func(_ context.Context, _ database.Querier, cityID int, _ store.NeighborhoodFilter) ([]model.Neighborhood, error) {
		return s.neighborhoods, nil
	}
	createNeighborhood = func(_ context.Context, _ database.Querier, n *model.Neighborhood) error {
		n.ID = 100 + len(s.created)
		s.created = append(s.created, *n)
		return nil
	}
	setNeighborhoodsRegion = func(_ context.Context, _ database.Querier, ids []int, regionID *int) (int64, error) {
		for _, id := range ids {
			s.assigned[id] = *regionID
		}
		return int64(len(ids)), nil
	}
	getRegionByID = func(_ context.Context, _ database.Querier, id int) (*model.Region, error) {
		for _, r := range s.regions {
			if r.ID == id {
				return &r, nil
			}
		}
		return nil, pgx.ErrNoRows
	}
	findRegion = func(_ context.Context, _ database.Querier, cityID int, name string) (*model.Region, error) {
		for _, r := range s.regions {
			if r.CityID == cityID && r.Name == name {
				return &r, nil
			}
		}
		return nil, pgx.ErrNoRows
	}
	createRegion = func(_ context.Context, _ database.Querier, r *model.Region) error {
		r.ID = 50 + len(s.createdRegion)
		s.createdRegion = append(s.createdRegion, *r)
		return nil
	}
}

func newStub() *stubLocalities {
	s := &stubLocalities{
		neighborhoods: []model.Neighborhood{
			{ID: 1, Name: "Santana", CityID: 1, RegionID: intPtr(10)},
			{ID: 2, Name: "Vila Mariana", CityID: 1},
			{ID: 3, Name: "Copacabana", CityID: 2},
		},
		regions: []model.Region{
			{ID: 10, Name: "Zona Norte", CityID: 1},
			{ID: 11, Name: "Zona Sul", CityID: 1},
			{ID: 12, Name: "Zona Sul", CityID: 2},
		},
	}
	s.install()
	return s
}

func TestResolveSelectedNeighborhood(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	s := newStub()

	// region is locked by the neighborhood
	nb, err := resolveLocality(ctx, nil, sess(false), saoPaulo, localityInput{NeighborhoodID: intPtr(1), RegionID: intPtr(11)}, nil)
	require.NoError(t, err)
	require.Equal(t, 10, *nb.RegionID)
	require.Empty(t, s.assigned)

	// neighborhood without region gets the selected one
	nb, err = resolveLocality(ctx, nil, sess(false), saoPaulo, localityInput{NeighborhoodID: intPtr(2), RegionID: intPtr(11)}, nil)
	require.NoError(t, err)
	require.Equal(t, 11, *nb.RegionID)
	require.Equal(t, 11, s.assigned[2])

	_, err = resolveLocality(ctx, nil, sess(true), saoPaulo, localityInput{NeighborhoodID: intPtr(3)}, nil)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = resolveLocality(ctx, nil, sess(true), saoPaulo, localityInput{NeighborhoodID: intPtr(99)}, nil)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = resolveLocality(ctx, nil, sess(true), saoPaulo, localityInput{NeighborhoodID: intPtr(2), RegionID: intPtr(12)}, nil)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestResolveFreeTextNeighborhood(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	s := newStub()

	// similar spelling reuses the existing row
	nb, err := resolveLocality(ctx, nil, sess(false), saoPaulo, localityInput{NewNeighborhood: "Vila Marianna"}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, nb.ID)
	require.Empty(t, s.created)

	// non-admin cannot type a new neighborhood
	_, err = resolveLocality(ctx, nil, sess(false), saoPaulo, localityInput{NewNeighborhood: "Jardim Novo"}, nil)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// unless the postal code lookup suggested it
	lookup := &cep.Address{Neighborhood: "Jardim Novo", City: "Sao Paulo", State: "SP"}
	nb, err = resolveLocality(ctx, nil, sess(false), saoPaulo, localityInput{NewNeighborhood: "jardim novo"}, lookup)
	require.NoError(t, err)
	require.Equal(t, "Jardim Novo", nb.Name)
	require.Len(t, s.created, 1)

	// nothing typed: the lookup neighborhood is used
	lookup = &cep.Address{Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"}
	nb, err = resolveLocality(ctx, nil, sess(false), saoPaulo, localityInput{}, lookup)
	require.NoError(t, err)
	require.Equal(t, "Bela Vista", nb.Name)

	// lookup from another city is ignored
	lookup = &cep.Address{Neighborhood: "Centro", City: "Campinas", State: "SP"}
	nb, err = resolveLocality(ctx, nil, sess(false), saoPaulo, localityInput{}, lookup)
	require.NoError(t, err)
	require.Nil(t, nb)
}

func TestResolveRegionRules(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	s := newStub()

	// admin creates neighborhood and region together
	nb, err := resolveLocality(ctx, nil, sess(true), saoPaulo, localityInput{NewNeighborhood: "parque  novo", NewRegion: "zona leste"}, nil)
	require.NoError(t, err)
	require.Equal(t, "Parque Novo", nb.Name)
	require.Equal(t, "Zona Leste", *nb.RegionName)
	require.Len(t, s.createdRegion, 1)

	// a non-admin may reuse a region by name
	lookup := &cep.Address{Neighborhood: "Ipiranga", City: "São Paulo", State: "SP"}
	nb, err = resolveLocality(ctx, nil, sess(false), saoPaulo, localityInput{NewRegion: "Zona Sul"}, lookup)
	require.NoError(t, err)
	require.Equal(t, 11, *nb.RegionID)

	// but not create one
	lookup = &cep.Address{Neighborhood: "Penha", City: "São Paulo", State: "SP"}
	_, err = resolveLocality(ctx, nil, sess(false), saoPaulo, localityInput{NewRegion: "Zona Oeste"}, lookup)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	require.Len(t, s.createdRegion, 1)
}
