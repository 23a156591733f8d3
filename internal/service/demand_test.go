package service

import (
	"context"
	"testing"
	"time"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

const demandID = "5f0c6b2e-8d1a-4c55-9b7e-2a4e3f1d9c01"

func TestParseDemand(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.Local)
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)

	d, err := parseDemand(api.DemandRequest{FamilyID: 1, Title: " Poda  de árvore ", Urgency: "media"}, now)
	require.NoError(t, err)
	require.Equal(t, "Poda de árvore", d.Title)
	require.Equal(t, model.UrgencyMedium, d.Urgency)
	require.Equal(t, model.StatusPending, d.Status)
	require.Nil(t, d.CompletedAt)

	d, err = parseDemand(api.DemandRequest{FamilyID: 1, Title: "x", Urgency: "Alta", Status: "concluida"}, now)
	require.NoError(t, err)
	require.Equal(t, model.StatusDone, d.Status)
	require.Equal(t, today, *d.CompletedAt)

	d, err = parseDemand(api.DemandRequest{
		FamilyID: 1, Title: "x", Urgency: "Alta", Status: "Concluída", CompletedAt: strPtr("2024-05-01"),
	}, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local), *d.CompletedAt)

	// a completion date on an open demand is dropped
	d, err = parseDemand(api.DemandRequest{
		FamilyID: 1, Title: "x", Urgency: "Alta", Status: "Em andamento", CompletedAt: strPtr("2024-05-01"),
	}, now)
	require.NoError(t, err)
	require.Nil(t, d.CompletedAt)

	cases := []struct {
		name string
		req  api.DemandRequest
	}{
		{"family", api.DemandRequest{Title: "x", Urgency: "Alta"}},
		{"title", api.DemandRequest{FamilyID: 1, Title: "  ", Urgency: "Alta"}},
		{"urgency", api.DemandRequest{FamilyID: 1, Title: "x", Urgency: "urgente"}},
		{"status", api.DemandRequest{FamilyID: 1, Title: "x", Urgency: "Alta", Status: "fechada"}},
		{"due date", api.DemandRequest{FamilyID: 1, Title: "x", Urgency: "Alta", DueDate: strPtr("10/05/2024")}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseDemand(c.req, now)
			require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

// stubDemands keeps demands in memory for the store functions.
func stubDemands() map[string]*model.Demand {
	rows := map[string]*model.Demand{}
	newUUID = func() string { return demandID }
	familyExists = func(_ context.Context, _ database.Querier, id int) (bool, error) { return id == 1, nil }
	getDemand = func(_ context.Context, _ database.Querier, id string) (*model.Demand, error) {
		if d, ok := rows[id]; ok {
			return d, nil
		}
		return nil, pgx.ErrNoRows
	}
	createDemand = func(_ context.Context, _ database.Querier, d *model.Demand) error {
		rows[d.ID] = d
		return nil
	}
	updateDemand = func(_ context.Context, _ database.Querier, d *model.Demand) (bool, error) {
		if _, ok := rows[d.ID]; !ok {
			return false, nil
		}
		rows[d.ID] = d
		return true, nil
	}
	deleteDemand = func(_ context.Context, _ database.Querier, id string) (bool, error) {
		_, ok := rows[id]
		delete(rows, id)
		return ok, nil
	}
	return rows
}

func TestDemandLifecycle(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	rows := stubDemands()

	d, err := CreateDemand(ctx, nil, api.DemandRequest{FamilyID: 1, Title: "Iluminação", Urgency: "Alta"})
	require.NoError(t, err)
	require.Equal(t, demandID, d.ID)
	require.Len(t, rows, 1)

	_, err = CreateDemand(ctx, nil, api.DemandRequest{FamilyID: 2, Title: "x", Urgency: "Alta"})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	d, err = UpdateDemand(ctx, nil, demandID, api.DemandRequest{FamilyID: 1, Title: "Iluminação", Urgency: "Alta", Status: "Concluída"})
	require.NoError(t, err)
	require.Equal(t, model.StatusDone, d.Status)
	require.NotNil(t, d.CompletedAt)

	_, err = UpdateDemand(ctx, nil, "nao-e-uuid", api.DemandRequest{})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	_, err = UpdateDemand(ctx, nil, "00000000-0000-0000-0000-000000000000", api.DemandRequest{FamilyID: 1, Title: "x", Urgency: "Baixa"})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = GetDemand(ctx, nil, "123")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, DeleteDemand(ctx, nil, demandID))
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(DeleteDemand(ctx, nil, demandID)))
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(DeleteDemand(ctx, nil, "x")))
}

func TestListDemands(t *testing.T) {
	t.Cleanup(restoreGlobals)
	var got store.DemandFilter
	listDemands = func(_ context.Context, _ database.Querier, f store.DemandFilter) ([]model.Demand, error) {
		got = f
		return []model.Demand{}, nil
	}

	_, err := ListDemands(context.Background(), nil, 4, "em andamento")
	require.NoError(t, err)
	require.Equal(t, 4, *got.FamilyID)
	require.Equal(t, model.StatusInProgress, got.Status)

	_, err = ListDemands(context.Background(), nil, 0, "")
	require.NoError(t, err)
	require.Nil(t, got.FamilyID)

	_, err = ListDemands(context.Background(), nil, 0, "aberta")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestOpenDemands(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubDemands()
	countOpenDemands = func(_ context.Context, _ database.Querier, id int) (int, error) { return 3, nil }

	n, err := OpenDemands(context.Background(), nil, 1)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = OpenDemands(context.Background(), nil, 5)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
