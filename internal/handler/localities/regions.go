package localities

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"

	"github.com/labstack/echo/v4"
)

// ListRegionsHandler lists the regions of a city with their neighborhood count.
// @Summary     List regions of a city
// @Tags        localidades
// @Produce     json
// @Param       cidadeId path    int true "ID da cidade"
// @Success     200      {array} api.RegionResponse
// @Failure     404      {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cidades/{cidadeId}/regioes [get]
func ListRegionsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		city, err := cityFromPath(ctx, db, c.Param("cidadeId"))
		if err != nil {
			return handler.Error(c, err)
		}
		list, err := listRegions(ctx, db, city.ID)
		if err != nil {
			return handler.Error(c, err)
		}
		resp := make([]api.RegionResponse, 0, len(list))
		for _, r := range list {
			resp = append(resp, api.RegionResponse{ID: r.ID, Name: r.Name, NeighborhoodCount: r.NeighborhoodCount})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateRegionHandler adds a region to a city.
// @Summary     Create a region
// @Tags        localidades
// @Accept      json
// @Produce     json
// @Param       cidadeId path     int               true "ID da cidade"
// @Param       body     body     api.RegionRequest true "Região"
// @Success     201      {object} api.RegionResponse
// @Failure     404      {object} api.ErrorResponse
// @Failure     409      {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cidades/{cidadeId}/regioes [post]
func CreateRegionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cityID, err := pathID(c.Param("cidadeId"), "cidadeId")
		if err != nil {
			return handler.Error(c, err)
		}
		var req api.RegionRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}
		r, err := createCityRegion(c.Request().Context(), db, cityID, req.Name)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusCreated, api.RegionResponse{ID: r.ID, Name: r.Name})
	}
}

// AssignRegionHandler points neighborhoods at an existing region.
// @Summary     Assign neighborhoods to a region
// @Tags        localidades
// @Accept      json
// @Produce     json
// @Param       regiaoId path     int                            true "ID da região"
// @Param       body     body     api.RegionNeighborhoodsRequest true "Bairros"
// @Success     200      {object} api.UpdatedResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     404      {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /regioes/{regiaoId}/bairros [put]
func AssignRegionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		regionID, err := pathID(c.Param("regiaoId"), "regiaoId")
		if err != nil {
			return handler.Error(c, err)
		}
		var req api.RegionNeighborhoodsRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}
		n, err := assignRegion(c.Request().Context(), db, regionID, req.NeighborhoodIDs)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.UpdatedResponse{Updated: n})
	}
}
