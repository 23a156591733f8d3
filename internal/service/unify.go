package service

import (
	"context"
	"errors"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/store"

	"github.com/jackc/pgx/v5"
)

var (
	moveAddresses            = store.MoveAddresses
	renameFamilyNeighborhood = store.RenameFamilyNeighborhood
	deleteNeighborhoods      = store.DeleteNeighborhoods
)

type UnifyResult struct {
	PrimaryID      int
	MovedAddresses int64
	Removed        int64
}

// UnifyNeighborhoods merges duplicated neighborhoods into primaryID in one
// transaction: addresses are re-pointed, the family denormalized names are
// rewritten and the duplicates deleted.
func UnifyNeighborhoods(ctx context.Context, db database.DB, primaryID int, duplicateIDs []int) (*UnifyResult, error) {
	dups := make([]int, 0, len(duplicateIDs))
	for _, id := range uniqueIDs(duplicateIDs) {
		if id != primaryID {
			dups = append(dups, id)
		}
	}
	if len(dups) == 0 {
		return nil, apperr.Validation("bairrosDuplicadosIds: informe ao menos um bairro diferente do principal")
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	primary, err := getNeighborhoodByID(ctx, tx, primaryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("bairro principal %d não encontrado", primaryID)
	}
	if err != nil {
		return nil, err
	}

	list, err := loadNeighborhoods(ctx, tx, dups)
	if err != nil {
		return nil, err
	}
	var inherited *int
	for _, n := range list {
		if n.CityID != primary.CityID {
			return nil, apperr.Validation("bairrosDuplicadosIds: bairro %d pertence a outra cidade", n.ID)
		}
		if inherited == nil && n.RegionID != nil {
			inherited = n.RegionID
		}
	}

	moved, err := moveAddresses(ctx, tx, dups, primary.ID)
	if err != nil {
		return nil, err
	}
	if err := renameFamilyNeighborhood(ctx, tx, primary.ID, primary.Name); err != nil {
		return nil, err
	}
	if primary.RegionID == nil && inherited != nil {
		if _, err := setNeighborhoodsRegion(ctx, tx, []int{primary.ID}, inherited); err != nil {
			return nil, err
		}
	}
	removed, err := deleteNeighborhoods(ctx, tx, dups)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &UnifyResult{PrimaryID: primary.ID, MovedAddresses: moved, Removed: removed}, nil
}
