package ibge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const municipios = `[
 {"id":1,"nome":"São Paulo","microrregiao":{"mesorregiao":{"UF":{"sigla":"SP"}}}},
 {"id":2,"nome":"Santa Rita","microrregiao":{"mesorregiao":{"UF":{"sigla":"PB"}}}},
 {"id":3,"nome":"Santa Rita","microrregiao":{"mesorregiao":{"UF":{"sigla":"MA"}}}}
]`

func newServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/municipios":
			w.Write([]byte(municipios))
		case "/municipios/1/distritos":
			w.Write([]byte(`[{"nome":"Santana"},{"nome":"Moema"},{"nome":" moema "}]`))
		case "/municipios/3/distritos":
			w.Write([]byte(`[{"nome":"Santa Rita"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestDistricts(t *testing.T) {
	srv := newServer(t)
	defer srv.Close()
	c := NewClient(srv.URL + "/")

	names, err := c.Districts(context.Background(), "Sao Paulo", "sp")
	require.NoError(t, err)
	require.Equal(t, []string{"Santana", "Moema"}, names)

	names, err = c.Districts(context.Background(), "Santa Rita - MA", "")
	require.NoError(t, err)
	require.Equal(t, []string{"Santa Rita"}, names)

	_, err = c.Districts(context.Background(), "São Paulo", "RJ")
	require.ErrorIs(t, err, ErrCityNotFound)
}

func TestSplitState(t *testing.T) {
	city, uf := splitState("Campinas - sp", "MG")
	require.Equal(t, "Campinas", city)
	require.Equal(t, "SP", uf)

	city, uf = splitState("Embu-Guaçu", "sp")
	require.Equal(t, "Embu-Guaçu", city)
	require.Equal(t, "SP", uf)
}

func TestDistrictsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	_, err := NewClient(srv.URL).Districts(context.Background(), "X", "SP")
	require.Error(t, err)
}
