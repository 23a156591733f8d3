package demands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/service"
	"gestor-politico/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const demandID = "0b6f3c2e-5d1a-4a51-9a59-2f1c0e8d4b7a"

func restore() {
	listDemands = service.ListDemands
	createDemand = service.CreateDemand
	updateDemand = service.UpdateDemand
	deleteDemand = service.DeleteDemand
}

func newCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleDemand() model.Demand {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return model.Demand{
		ID:          demandID,
		FamilyID:    3,
		FamilyLabel: "Rua A, 10",
		Title:       "Poda de árvore",
		Urgency:     model.UrgencyHigh,
		Status:      model.StatusPending,
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		DueDate:     &due,
	}
}

func TestToResponse(t *testing.T) {
	resp := toResponse(sampleDemand())
	require.Equal(t, "Rua A, 10", resp.Family)
	require.Equal(t, "Alta", resp.Urgency)
	require.NotNil(t, resp.DueDate)
	require.Equal(t, "2025-03-10", *resp.DueDate)
	require.Nil(t, resp.CompletedAt)
}

func TestListDemandsHandler(t *testing.T) {
	t.Cleanup(restore)
	var gotFamily int
	var gotStatus string
	listDemands = func(_ context.Context, _ database.Querier, familyID int, status string) ([]model.Demand, error) {
		gotFamily, gotStatus = familyID, status
		if status == "Arquivada" {
			return nil, apperr.Validation("status inválido")
		}
		return []model.Demand{sampleDemand()}, nil
	}

	c, rec := newCtx(http.MethodGet, "/demandas?familiaId=3&status=Pendente", "")
	require.NoError(t, ListDemandsHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 3, gotFamily)
	require.Equal(t, "Pendente", gotStatus)
	require.Contains(t, rec.Body.String(), `"dataLimite":"2025-03-10"`)

	c, rec = newCtx(http.MethodGet, "/demandas?familiaId=x", "")
	require.NoError(t, ListDemandsHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newCtx(http.MethodGet, "/demandas?status=Arquivada", "")
	require.NoError(t, ListDemandsHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0, gotFamily)
}

func TestCreateDemandHandler(t *testing.T) {
	t.Cleanup(restore)
	createDemand = func(_ context.Context, _ database.Querier, req api.DemandRequest) (*model.Demand, error) {
		if req.FamilyID == 99 {
			return nil, apperr.NotFound("família %d não encontrada", req.FamilyID)
		}
		d := sampleDemand()
		d.Title = req.Title
		return &d, nil
	}

	c, rec := newCtx(http.MethodPost, "/demandas", `{"familiaId":3,"titulo":"Iluminação","urgencia":"Alta"}`)
	require.NoError(t, CreateDemandHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"titulo":"Iluminação"`)

	c, rec = newCtx(http.MethodPost, "/demandas", `{"familiaId":3,"urgencia":"Alta"}`)
	require.NoError(t, CreateDemandHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "titulo")

	c, rec = newCtx(http.MethodPost, "/demandas", `{"familiaId":3,"titulo":"x","urgencia":"Alta","dataLimite":"10/03/2025"}`)
	require.NoError(t, CreateDemandHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newCtx(http.MethodPost, "/demandas", `{"familiaId":99,"titulo":"x","urgencia":"Alta"}`)
	require.NoError(t, CreateDemandHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newCtx(http.MethodPost, "/demandas", `{`)
	require.NoError(t, CreateDemandHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateDemandHandler(t *testing.T) {
	t.Cleanup(restore)
	updateDemand = func(_ context.Context, _ database.Querier, id string, req api.DemandRequest) (*model.Demand, error) {
		if id != demandID {
			return nil, apperr.NotFound("demanda não encontrada")
		}
		d := sampleDemand()
		d.Status = model.StatusDone
		done := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
		d.CompletedAt = &done
		return &d, nil
	}

	body := `{"familiaId":3,"titulo":"Poda","urgencia":"Alta","status":"Concluída"}`
	c, rec := newCtx(http.MethodPut, "/demandas/"+demandID, body)
	c.SetParamNames("id")
	c.SetParamValues(demandID)
	require.NoError(t, UpdateDemandHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"dataConclusao":"2025-03-05"`)

	c, rec = newCtx(http.MethodPut, "/demandas/other", body)
	c.SetParamNames("id")
	c.SetParamValues("other")
	require.NoError(t, UpdateDemandHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteDemandHandler(t *testing.T) {
	t.Cleanup(restore)
	deleteDemand = func(_ context.Context, _ database.Querier, id string) error {
		if id != demandID {
			return apperr.NotFound("demanda não encontrada")
		}
		return nil
	}

	c, rec := newCtx(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(demandID)
	require.NoError(t, DeleteDemandHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newCtx(http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, DeleteDemandHandler(&database.FakeDB{})(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
