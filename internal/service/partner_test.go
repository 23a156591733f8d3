package service

import (
	"context"
	"errors"
	"testing"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestPromotePartner(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx := context.Background()
	partners := map[int]*model.Partner{}

	getMember = func(_ context.Context, _ database.Querier, id int) (*model.Member, error) {
		if id != 7 {
			return nil, pgx.ErrNoRows
		}
		return &model.Member{ID: 7, FullName: "Maria Souza"}, nil
	}
	getPartnerByMember = func(_ context.Context, _ database.Querier, id int) (*model.Partner, error) {
		if p, ok := partners[id]; ok {
			return p, nil
		}
		return nil, pgx.ErrNoRows
	}
	created := 0
	createPartner = func(_ context.Context, _ database.Querier, p *model.Partner) error {
		created++
		p.ID = created
		partners[p.MemberID] = p
		return nil
	}

	p, err := PromotePartner(ctx, nil, 7)
	require.NoError(t, err)
	require.Len(t, p.Token, 64)
	require.Equal(t, "Maria Souza", p.MemberName)

	again, err := PromotePartner(ctx, nil, 7)
	require.NoError(t, err)
	require.Equal(t, p.Token, again.Token)
	require.Equal(t, 1, created)

	_, err = PromotePartner(ctx, nil, 8)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPromotePartnerRace(t *testing.T) {
	t.Cleanup(restoreGlobals)
	winner := &model.Partner{ID: 3, MemberID: 7, Token: "abc"}
	calls := 0
	getMember = func(context.Context, database.Querier, int) (*model.Member, error) {
		return &model.Member{ID: 7}, nil
	}
	getPartnerByMember = func(context.Context, database.Querier, int) (*model.Partner, error) {
		calls++
		if calls == 1 {
			return nil, pgx.ErrNoRows
		}
		return winner, nil
	}
	createPartner = func(context.Context, database.Querier, *model.Partner) error {
		return &pgconn.PgError{Code: "23505"}
	}

	p, err := PromotePartner(context.Background(), nil, 7)
	require.NoError(t, err)
	require.Same(t, winner, p)

	randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
	calls = 0
	_, err = PromotePartner(context.Background(), nil, 7)
	require.Error(t, err)
}

func TestPartnerByToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	getPartnerByToken = func(_ context.Context, _ database.Querier, token string) (*model.Partner, error) {
		if token == "ok" {
			return &model.Partner{ID: 1, Token: token}, nil
		}
		return nil, pgx.ErrNoRows
	}
	p, err := PartnerByToken(context.Background(), nil, "ok")
	require.NoError(t, err)
	require.Equal(t, 1, p.ID)

	_, err = PartnerByToken(context.Background(), nil, "x")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
