package config

import (
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func setBase(t *testing.T) {
	t.Helper()
	loadDotEnv = func(...string) error { return nil }
	t.Cleanup(func() { loadDotEnv = godotenv.Load })
	t.Setenv("DATABASE_URL", "postgres://localhost/gestor")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "s3cret")
	for _, k := range []string{"REDIS_DB", "REDIS_PASSWORD", "PORT", "WORKER_COUNT", "WORKER_QUEUE", "CORS_ORIGINS", "GEOCODING_URL", "CEP_URL", "IBGE_URL"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setBase(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, 2, cfg.WorkerCount)
	require.Equal(t, 256, cfg.WorkerQueue)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Empty(t, cfg.RedisPassword)
}

func TestLoadOverrides(t *testing.T) {
	setBase(t)
	t.Setenv("REDIS_DB", "3")
	t.Setenv("PORT", "9000")
	t.Setenv("WORKER_COUNT", "4")
	t.Setenv("CORS_ORIGINS", "http://a.gov, http://b.gov,")
	t.Setenv("CEP_URL", "http://cep.local/")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, ":9000", cfg.Addr())
	require.Equal(t, 4, cfg.WorkerCount)
	require.Equal(t, []string{"http://a.gov", "http://b.gov"}, cfg.CORSOrigins)
	require.Equal(t, "http://cep.local/", cfg.CEPURL)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string][2]string{
		"missing database": {"DATABASE_URL", ""},
		"missing redis":    {"REDIS_ADDR", ""},
		"missing secret":   {"JWT_SECRET", ""},
		"bad redis db":     {"REDIS_DB", "x"},
		"negative db":      {"REDIS_DB", "-1"},
		"zero workers":     {"WORKER_COUNT", "0"},
		"bad queue":        {"WORKER_QUEUE", "many"},
		"bad port":         {"PORT", "http"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			setBase(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			require.Error(t, err)
		})
	}
}
