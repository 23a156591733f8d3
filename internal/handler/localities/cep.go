package localities

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/service"

	"github.com/labstack/echo/v4"
)

// CEPHandler resolves a postal code to street, neighborhood and city.
// @Summary     Look up a CEP
// @Description Consulta o CEP, cria a cidade quando não existe e indica o bairro cadastrado correspondente
// @Tags        localidades
// @Produce     json
// @Param       cep path     string true "CEP, com ou sem hífen"
// @Success     200 {object} api.CEPResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cep/{cep} [get]
func CEPHandler(db database.DB, lookup service.CEPLookup) echo.HandlerFunc {
	return func(c echo.Context) error {
		a, err := lookupAddress(c.Request().Context(), db, lookup, c.Param("cep"))
		if err != nil {
			return handler.Error(c, err)
		}
		resp := api.CEPResponse{
			CEP:          a.CEP,
			Street:       a.Street,
			Neighborhood: a.Neighborhood,
			CityID:       a.City.ID,
			City:         a.City.Name,
			State:        a.City.State,
		}
		if a.Matched != nil {
			resp.NeighborhoodID = &a.Matched.ID
			resp.Neighborhood = a.Matched.Name
			resp.RegionID = a.Matched.RegionID
			resp.Region = a.Matched.RegionName
		}
		return c.JSON(http.StatusOK, resp)
	}
}
