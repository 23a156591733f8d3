package localities

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"

	"github.com/labstack/echo/v4"
)

// ListCitiesHandler lists the cities sorted by name.
// @Summary     List cities
// @Tags        localidades
// @Produce     json
// @Success     200 {array} api.CityResponse
// @Security    BearerAuth
// @Router      /cidades [get]
func ListCitiesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listCities(c.Request().Context(), db)
		if err != nil {
			return handler.Error(c, err)
		}
		resp := make([]api.CityResponse, 0, len(list))
		for _, city := range list {
			resp = append(resp, cityResponse(city))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateCityHandler creates a city, or returns the existing one with the same
// name and state.
// @Summary     Create a city
// @Tags        localidades
// @Accept      json
// @Produce     json
// @Param       body body     api.CityRequest true "Cidade"
// @Success     201  {object} api.CityResponse "criada"
// @Success     200  {object} api.CityResponse "já existente"
// @Failure     400  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cidades [post]
func CreateCityHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CityRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}
		city, created, err := createCity(c.Request().Context(), db, req.Name, req.State)
		if err != nil {
			return handler.Error(c, err)
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		return c.JSON(status, cityResponse(*city))
	}
}
