package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestor-politico/internal/database"
	"gestor-politico/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func userVals(u model.User) []any {
	return []any{u.ID, u.Username, u.PasswordHash, u.Name, string(u.Role), u.CreatedAt}
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	sample := model.User{ID: 1, Username: "admin@plataforma.gov", PasswordHash: "h", Name: "Administrador", Role: model.RoleAdmin, CreatedAt: now}

	t.Run("get ok", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Equal(t, []any{1}, args)
			return fakeRow{vals: userVals(sample)}
		}}
		u, err := GetUserByID(ctx, db, 1)
		require.NoError(t, err)
		require.Equal(t, model.RoleAdmin, u.Role)
		require.Equal(t, "admin@plataforma.gov", u.Username)
	})

	t.Run("get by username not found", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeRow{err: pgx.ErrNoRows}
		}}
		_, err := GetUserByUsername(ctx, db, "x")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("list", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{userVals(sample), userVals(sample)}}
		db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) { return rows, nil }}
		list, err := ListUsers(ctx, db)
		require.NoError(t, err)
		require.Len(t, list, 2)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("db") }
		_, err = ListUsers(ctx, db)
		require.Error(t, err)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &fakeRows{data: [][]any{userVals(sample)}, scanErr: errors.New("scan")}, nil
		}
		_, err = ListUsers(ctx, db)
		require.Error(t, err)
	})

	t.Run("create", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			gotArgs = args
			return fakeRow{vals: []any{7, now}}
		}}
		u, err := CreateUser(ctx, db, &model.User{Username: "a@b.com", PasswordHash: "h", Name: "A", Role: model.RoleUser})
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Equal(t, "USUARIO", gotArgs[3])

		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return fakeRow{err: errors.New("dup")} }
		_, err = CreateUser(ctx, db, &model.User{})
		require.Error(t, err)
	})

	t.Run("update and delete report existence", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 1"), nil
		}}
		ok, err := UpdateUser(ctx, db, &sample)
		require.NoError(t, err)
		require.True(t, ok)

		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		ok, err = DeleteUser(ctx, db, 99)
		require.NoError(t, err)
		require.False(t, ok)

		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("fail")
		}
		require.Error(t, UpdateUserPassword(ctx, db, 1, "h"))
		_, err = DeleteUser(ctx, db, 1)
		require.Error(t, err)
	})

	t.Run("count", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeRow{vals: []any{3}}
		}}
		n, err := CountUsers(ctx, db)
		require.NoError(t, err)
		require.Equal(t, 3, n)
	})
}
