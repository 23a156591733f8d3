package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gestor-politico/internal/cache"
	"gestor-politico/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, Services{})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		// catch-alls added by group middleware
		if r.Path == "/api" || r.Path == "/api/*" {
			continue
		}
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodPost + " /api/login",
		http.MethodPost + " /api/auth/refresh",
		http.MethodPost + " /api/auth/logout",
		http.MethodGet + " /api/ping",
		http.MethodGet + " /api/perfil",
		http.MethodPut + " /api/perfil",
		http.MethodGet + " /api/familias",
		http.MethodPost + " /api/familias",
		http.MethodGet + " /api/familias/:id",
		http.MethodPut + " /api/familias/:id",
		http.MethodGet + " /api/familias/:id/demandas/abertas",
		http.MethodGet + " /api/cidades",
		http.MethodPost + " /api/cidades",
		http.MethodGet + " /api/cidades/:cidadeId/regioes",
		http.MethodGet + " /api/cidades/:cidadeId/bairros",
		http.MethodGet + " /api/cep/:cep",
		http.MethodGet + " /api/demandas",
		http.MethodPost + " /api/demandas",
		http.MethodPut + " /api/demandas/:id",
		http.MethodDelete + " /api/demandas/:id",
		http.MethodPost + " /api/membros/:id/parceiro",
		http.MethodGet + " /api/parceiros/:token",
		http.MethodGet + " /api/usuarios",
		http.MethodPost + " /api/usuarios",
		http.MethodGet + " /api/usuarios/:id",
		http.MethodPut + " /api/usuarios/:id",
		http.MethodDelete + " /api/usuarios/:id",
		http.MethodPost + " /api/cidades/:cidadeId/regioes",
		http.MethodPost + " /api/cidades/:cidadeId/importar-bairros",
		http.MethodPut + " /api/regioes/:regiaoId/bairros",
		http.MethodPut + " /api/bairros/regiao",
		http.MethodPost + " /api/bairros/unificar",
		http.MethodPost + " /api/familias/geocodificar",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, Services{})

	for _, target := range []string{"/api/familias", "/api/usuarios", "/api/demandas"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}
