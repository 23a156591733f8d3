package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
	"gestor-politico/internal/store"
	"gestor-politico/internal/textnorm"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	newUUID          = uuid.NewString
	familyExists     = store.FamilyExists
	listDemands      = store.ListDemands
	getDemand        = store.GetDemand
	createDemand     = store.CreateDemand
	updateDemand     = store.UpdateDemand
	deleteDemand     = store.DeleteDemand
	countOpenDemands = store.CountOpenDemands
)

func parseDate(field string, v *string) (*time.Time, error) {
	s := optional(v)
	if s == nil {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, *s, time.Local)
	if err != nil {
		return nil, apperr.Validation("%s: data inválida, use AAAA-MM-DD", field)
	}
	return &t, nil
}

// parseDemand validates a payload. Status defaults to Pendente; a completed
// demand gets today as completion date unless one is given, any other status
// clears it.
func parseDemand(req api.DemandRequest, now time.Time) (*model.Demand, error) {
	d := &model.Demand{
		FamilyID:    req.FamilyID,
		Title:       textnorm.CollapseSpaces(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      model.StatusPending,
	}
	if d.FamilyID <= 0 {
		return nil, apperr.Validation("familiaId: informe a família")
	}
	if d.Title == "" {
		return nil, apperr.Validation("titulo: informe o título")
	}
	var err error
	if d.Urgency, err = model.ParseDemandUrgency(req.Urgency); err != nil {
		return nil, apperr.Validation("urgencia: %v", err)
	}
	if strings.TrimSpace(req.Status) != "" {
		if d.Status, err = model.ParseDemandStatus(req.Status); err != nil {
			return nil, apperr.Validation("status: %v", err)
		}
	}
	if d.DueDate, err = parseDate("dataLimite", req.DueDate); err != nil {
		return nil, err
	}
	if d.Status == model.StatusDone {
		if d.CompletedAt, err = parseDate("dataConclusao", req.CompletedAt); err != nil {
			return nil, err
		}
		if d.CompletedAt == nil {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
			d.CompletedAt = &today
		}
	}
	return d, nil
}

func checkFamily(ctx context.Context, db database.Querier, id int) error {
	ok, err := familyExists(ctx, db, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("família %d não encontrada", id)
	}
	return nil
}

func ListDemands(ctx context.Context, db database.Querier, familyID int, status string) ([]model.Demand, error) {
	var f store.DemandFilter
	if familyID > 0 {
		f.FamilyID = &familyID
	}
	if strings.TrimSpace(status) != "" {
		s, err := model.ParseDemandStatus(status)
		if err != nil {
			return nil, apperr.Validation("status: %v", err)
		}
		f.Status = s
	}
	return listDemands(ctx, db, f)
}

func GetDemand(ctx context.Context, db database.Querier, id string) (*model.Demand, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.NotFound("demanda não encontrada")
	}
	d, err := getDemand(ctx, db, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("demanda não encontrada")
	}
	return d, err
}

func CreateDemand(ctx context.Context, db database.Querier, req api.DemandRequest) (*model.Demand, error) {
	d, err := parseDemand(req, timeNow())
	if err != nil {
		return nil, err
	}
	if err := checkFamily(ctx, db, d.FamilyID); err != nil {
		return nil, err
	}
	d.ID = newUUID()
	if err := createDemand(ctx, db, d); err != nil {
		return nil, err
	}
	return GetDemand(ctx, db, d.ID)
}

func UpdateDemand(ctx context.Context, db database.Querier, id string, req api.DemandRequest) (*model.Demand, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.NotFound("demanda não encontrada")
	}
	d, err := parseDemand(req, timeNow())
	if err != nil {
		return nil, err
	}
	if err := checkFamily(ctx, db, d.FamilyID); err != nil {
		return nil, err
	}
	d.ID = id
	ok, err := updateDemand(ctx, db, d)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("demanda não encontrada")
	}
	return GetDemand(ctx, db, id)
}

func DeleteDemand(ctx context.Context, db database.Querier, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("demanda não encontrada")
	}
	ok, err := deleteDemand(ctx, db, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound("demanda não encontrada")
	}
	return nil
}

// OpenDemands counts the demands of a family that are not completed.
func OpenDemands(ctx context.Context, db database.Querier, familyID int) (int, error) {
	if err := checkFamily(ctx, db, familyID); err != nil {
		return 0, err
	}
	return countOpenDemands(ctx, db, familyID)
}
