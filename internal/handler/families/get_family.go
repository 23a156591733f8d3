package families

import (
	"net/http"

	"gestor-politico/internal/handler"

	"github.com/labstack/echo/v4"
)

// GetFamilyHandler returns a family with its address and members.
// @Summary     Get a family
// @Tags        familias
// @Produce     json
// @Param       id  path     int true "ID da família"
// @Success     200 {object} api.FamilyResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /familias/{id} [get]
func GetFamilyHandler(svc FamilyService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c.Param("id"))
		if err != nil {
			return handler.Error(c, err)
		}
		f, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(*f))
	}
}
