package store

import (
	"context"
	"fmt"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"
)

// DemandFilter narrows ListDemands; zero values do not filter.
type DemandFilter struct {
	FamilyID *int
	Status   model.DemandStatus
}

const demandSelect = `SELECT d.id::text, d.familia_id, d.titulo, d.descricao, d.urgencia, d.status,
	       d.criado_em, d.data_limite, d.data_conclusao, f.endereco
	FROM demandas d
	JOIN familias f ON f.id = d.familia_id`

func scanDemand(row interface{ Scan(...any) error }) (*model.Demand, error) {
	d := &model.Demand{}
	var urgency, status string
	if err := row.Scan(
		&d.ID, &d.FamilyID, &d.Title, &d.Description, &urgency, &status,
		&d.CreatedAt, &d.DueDate, &d.CompletedAt, &d.FamilyLabel,
	); err != nil {
		return nil, err
	}
	d.Urgency = model.DemandUrgency(urgency)
	d.Status = model.DemandStatus(status)
	return d, nil
}

func ListDemands(ctx context.Context, db database.Querier, f DemandFilter) ([]model.Demand, error) {
	sql := demandSelect + ` WHERE TRUE`
	var args []any
	if f.FamilyID != nil {
		args = append(args, *f.FamilyID)
		sql += fmt.Sprintf(` AND d.familia_id = $%d`, len(args))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		sql += fmt.Sprintf(` AND d.status = $%d`, len(args))
	}
	sql += ` ORDER BY d.criado_em DESC`

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListDemands: %w", err)
	}
	defer rows.Close()

	list := []model.Demand{}
	for rows.Next() {
		d, err := scanDemand(rows)
		if err != nil {
			return nil, fmt.Errorf("ListDemands: %w", err)
		}
		list = append(list, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListDemands: %w", err)
	}
	return list, nil
}

func GetDemand(ctx context.Context, db database.Querier, id string) (*model.Demand, error) {
	d, err := scanDemand(db.QueryRow(ctx, demandSelect+` WHERE d.id = $1::uuid`, id))
	if err != nil {
		return nil, fmt.Errorf("GetDemand: %w", err)
	}
	return d, nil
}

func CreateDemand(ctx context.Context, db database.Querier, d *model.Demand) error {
	err := db.QueryRow(ctx,
		`INSERT INTO demandas (id, familia_id, titulo, descricao, urgencia, status, data_limite, data_conclusao)
		 VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING criado_em`,
		d.ID, d.FamilyID, d.Title, d.Description, string(d.Urgency), string(d.Status), d.DueDate, d.CompletedAt,
	).Scan(&d.CreatedAt)
	if err != nil {
		return fmt.Errorf("CreateDemand: %w", err)
	}
	return nil
}

func UpdateDemand(ctx context.Context, db database.Querier, d *model.Demand) (bool, error) {
	tag, err := db.Exec(ctx,
		`UPDATE demandas
		 SET familia_id = $1, titulo = $2, descricao = $3, urgencia = $4, status = $5,
		     data_limite = $6, data_conclusao = $7
		 WHERE id = $8::uuid`,
		d.FamilyID, d.Title, d.Description, string(d.Urgency), string(d.Status), d.DueDate, d.CompletedAt, d.ID,
	)
	if err != nil {
		return false, fmt.Errorf("UpdateDemand: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func DeleteDemand(ctx context.Context, db database.Querier, id string) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM demandas WHERE id = $1::uuid`, id)
	if err != nil {
		return false, fmt.Errorf("DeleteDemand: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountOpenDemands counts the demands of a family that are not completed yet.
func CountOpenDemands(ctx context.Context, db database.Querier, familyID int) (int, error) {
	var n int
	err := db.QueryRow(ctx,
		`SELECT count(*) FROM demandas WHERE familia_id = $1 AND status <> $2`,
		familyID, string(model.StatusDone),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("CountOpenDemands: %w", err)
	}
	return n, nil
}
