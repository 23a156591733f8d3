package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)
	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return nil, errors.New("bad dsn") }
	_, err := NewPgxPool(context.Background(), "postgres://")
	require.EqualError(t, err, "bad dsn")

	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "postgres://")
	require.NoError(t, err)
	require.NotNil(t, db)
}

// stubMigrationChain makes every step succeed and hands m to migrate.
func stubMigrationChain(m migrateInstance) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, nil }
}

func TestMigrationSetupErrors(t *testing.T) {
	t.Cleanup(restore)
	steps := map[string]func(){
		"open":   func() { sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") } },
		"driver": func() { postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") } },
		"source": func() { iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") } },
		"migrate": func() {
			migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
				return nil, errors.New("mig")
			}
		},
	}
	for name, breakStep := range steps {
		stubMigrationChain(fakeMigrator{})
		breakStep()
		require.Error(t, RunMigrations("url"), name)
		require.Error(t, RollbackAll("url"), name)
	}
}

func TestRunMigrations(t *testing.T) {
	t.Cleanup(restore)
	stubMigrationChain(fakeMigrator{})
	require.NoError(t, RunMigrations("url"))

	stubMigrationChain(fakeMigrator{upErr: migrate.ErrNoChange})
	require.NoError(t, RunMigrations("url"))

	stubMigrationChain(fakeMigrator{upErr: errors.New("dirty database version 1")})
	require.Error(t, RunMigrations("url"))
}

func TestRollbackAll(t *testing.T) {
	t.Cleanup(restore)
	stubMigrationChain(fakeMigrator{})
	require.NoError(t, RollbackAll("url"))

	stubMigrationChain(fakeMigrator{downErr: migrate.ErrNoChange})
	require.NoError(t, RollbackAll("url"))

	stubMigrationChain(fakeMigrator{downErr: errors.New("d")})
	require.Error(t, RollbackAll("url"))
}

func TestEmbeddedSchema(t *testing.T) {
	up, err := fs.ReadFile(migrationsFS, "migrations/000001_init_schema.up.sql")
	require.NoError(t, err)
	for _, table := range []string{"login", "cidades", "regioes", "bairros", "enderecos", "familias", "membro_familia", "parceiro", "demandas"} {
		require.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	require.Contains(t, string(up), "CREATE UNIQUE INDEX IF NOT EXISTS idx_membro_familia_principal")
	require.Regexp(t, `(?s)DO \$\$\s*BEGIN\s*CREATE TYPE perfil_usuario .*EXCEPTION\s*WHEN duplicate_object THEN NULL;`, string(up))

	down, err := fs.ReadFile(migrationsFS, "migrations/000001_init_schema.down.sql")
	require.NoError(t, err)
	require.Contains(t, string(down), "DROP TABLE")
}
