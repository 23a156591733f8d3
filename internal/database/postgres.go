package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var pgxpoolNew = pgxpool.New

type pgxDB struct {
	*pgxpool.Pool
}

func (p pgxDB) Begin(ctx context.Context) (Tx, error) {
	return p.Pool.Begin(ctx)
}

// NewPgxPool opens a pgx pool and exposes it through DB.
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pgxDB{Pool: pool}, nil
}
