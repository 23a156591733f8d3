package localities

import (
	"net/http"
	"strconv"

	"gestor-politico/internal/api"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/middleware"
	"gestor-politico/internal/service"
	"gestor-politico/internal/store"

	"github.com/labstack/echo/v4"
)

// ListNeighborhoodsHandler lists the neighborhoods of a city, optionally of one region.
// @Summary     List neighborhoods of a city
// @Tags        localidades
// @Produce     json
// @Param       cidadeId path     int    true  "ID da cidade"
// @Param       regiaoId query    int    false "Filtra por região"
// @Param       regiao   query    string false "Filtra pelo nome da região"
// @Success     200      {array}  api.NeighborhoodResponse
// @Failure     404      {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cidades/{cidadeId}/bairros [get]
func ListNeighborhoodsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		city, err := cityFromPath(ctx, db, c.Param("cidadeId"))
		if err != nil {
			return handler.Error(c, err)
		}
		f := store.NeighborhoodFilter{RegionName: c.QueryParam("regiao")}
		if raw := c.QueryParam("regiaoId"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return handler.BadRequest(c, "regiaoId inválido")
			}
			f.RegionID = &id
		}

		list, err := listNeighborhoods(ctx, db, city.ID, f)
		if err != nil {
			return handler.Error(c, err)
		}
		resp := make([]api.NeighborhoodResponse, 0, len(list))
		for _, n := range list {
			resp = append(resp, neighborhoodResponse(n))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// UpdateNeighborhoodsRegionHandler sets, creates or clears the region of
// several neighborhoods of one city.
// @Summary     Set the region of neighborhoods
// @Tags        localidades
// @Accept      json
// @Produce     json
// @Param       body body     api.AssignRegionRequest true "Bairros e região"
// @Success     200  {object} api.UpdatedResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /bairros/regiao [put]
func UpdateNeighborhoodsRegionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AssignRegionRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}
		if req.RegionID != nil && req.FreeRegionName != nil {
			return handler.BadRequest(c, "informe regiaoId ou nomeRegiaoLivre, não ambos")
		}
		n, err := updateNeighborhoodsRegion(c.Request().Context(), db, middleware.SessionFrom(c), req)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.UpdatedResponse{Updated: n})
	}
}

// UnifyHandler merges duplicated neighborhoods into a primary one.
// @Summary     Unify neighborhoods
// @Description Move os endereços dos bairros duplicados para o principal e remove os duplicados
// @Tags        localidades
// @Accept      json
// @Produce     json
// @Param       body body     api.UnifyRequest true "Bairros"
// @Success     200  {object} api.UnifyResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /bairros/unificar [post]
func UnifyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UnifyRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}
		res, err := unifyNeighborhoods(c.Request().Context(), db, req.PrimaryID, req.DuplicateIDs)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.UnifyResponse{
			PrimaryID:      res.PrimaryID,
			MovedAddresses: res.MovedAddresses,
			Removed:        res.Removed,
		})
	}
}

// ImportHandler creates the neighborhoods of a city from the IBGE districts.
// @Summary     Import neighborhoods from IBGE
// @Tags        localidades
// @Produce     json
// @Param       cidadeId path     int true "ID da cidade"
// @Success     200      {object} api.ImportResponse
// @Failure     404      {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /cidades/{cidadeId}/importar-bairros [post]
func ImportHandler(db database.DB, src service.DistrictSource) echo.HandlerFunc {
	return func(c echo.Context) error {
		cityID, err := pathID(c.Param("cidadeId"), "cidadeId")
		if err != nil {
			return handler.Error(c, err)
		}
		res, err := importNeighborhoods(c.Request().Context(), db, src, cityID)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.ImportResponse{CityID: res.CityID, Inserted: res.Inserted, Skipped: res.Skipped})
	}
}
