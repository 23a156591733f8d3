package families

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"

	"github.com/labstack/echo/v4"
)

// OpenDemandsHandler counts the demands of a family that are not completed.
// @Summary     Count open demands of a family
// @Tags        familias
// @Produce     json
// @Param       id  path     int true "ID da família"
// @Success     200 {object} api.OpenDemandsResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /familias/{id}/demandas/abertas [get]
func OpenDemandsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c.Param("id"))
		if err != nil {
			return handler.Error(c, err)
		}
		n, err := openDemands(c.Request().Context(), db, id)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, api.OpenDemandsResponse{FamilyID: id, Open: n})
	}
}
