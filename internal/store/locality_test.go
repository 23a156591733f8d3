package store

import (
	"context"
	"errors"
	"testing"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCityStore(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, []any{"SAO PAULO", "SP"}, args)
		return fakeRow{vals: []any{1, "São Paulo", "SP"}}
	}}
	c, err := FindCity(ctx, db, " são  paulo", "SP")
	require.NoError(t, err)
	require.Equal(t, 1, c.ID)

	db.QueryRowFn = func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, "CAMPINAS", args[1])
		return fakeRow{vals: []any{2}}
	}
	nc := &model.City{Name: "Campinas", State: "SP"}
	require.NoError(t, CreateCity(ctx, db, nc))
	require.Equal(t, 2, nc.ID)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{data: [][]any{{1, "Campinas", "SP"}, {2, "São Paulo", "SP"}}}, nil
	}
	list, err := ListCities(ctx, db)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestRegionStore(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
		return &fakeRows{data: [][]any{{1, "Zona Norte", 1, 2}, {2, "Zona Sul", 1, 0}}}, nil
	}}
	list, err := ListRegions(ctx, db, 1)
	require.NoError(t, err)
	require.Equal(t, 2, list[0].NeighborhoodCount)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
		return fakeRow{err: &pgconn.PgError{Code: "23505"}}
	}
	err = CreateRegion(ctx, db, &model.Region{Name: "Zona Sul", CityID: 1})
	require.True(t, database.IsUniqueViolation(err))
}

func TestListNeighborhoodsFilters(t *testing.T) {
	ctx := context.Background()
	var gotSQL string
	var gotArgs []any
	db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
		gotSQL, gotArgs = sql, args
		return &fakeRows{data: [][]any{{3, "Moema", 1, ptr(2), ptr("Zona Sul")}}}, nil
	}}

	list, err := ListNeighborhoods(ctx, db, 1, NeighborhoodFilter{RegionName: "zona sul"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Zona Sul", *list[0].RegionName)
	require.Contains(t, gotSQL, "r.nome_normalizado = $2")
	require.Equal(t, []any{1, "ZONA SUL"}, gotArgs)

	_, err = ListNeighborhoods(ctx, db, 1, NeighborhoodFilter{RegionID: ptr(2)})
	require.NoError(t, err)
	require.Contains(t, gotSQL, "b.regiao_id = $2")

	_, err = ListNeighborhoods(ctx, db, 1, NeighborhoodFilter{})
	require.NoError(t, err)
	require.Equal(t, []any{1}, gotArgs)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("db") }
	_, err = ListNeighborhoods(ctx, db, 1, NeighborhoodFilter{})
	require.Error(t, err)
}

func TestUnificationPrimitives(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 4"), nil
	}}
	n, err := MoveAddresses(ctx, db, []int{2, 3}, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.NoError(t, RenameFamilyNeighborhood(ctx, db, 1, "Moema"))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("DELETE 2"), nil
	}
	n, err = DeleteNeighborhoods(ctx, db, []int{2, 3})
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}
