package families

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/middleware"

	"github.com/labstack/echo/v4"
)

func bindFamily(c echo.Context) (api.FamilyRequest, error) {
	var req api.FamilyRequest
	if err := c.Bind(&req); err != nil {
		return req, apperr.Validation("corpo da requisição inválido")
	}
	return req, c.Validate(&req)
}

// CreateFamilyHandler registers a family, its address and members in one transaction.
// @Summary     Create a family
// @Description Cadastra família, endereço e membros; exige exatamente um responsável principal
// @Tags        familias
// @Accept      json
// @Produce     json
// @Param       body body     api.FamilyRequest true "Família"
// @Success     201  {object} api.FamilyResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /familias [post]
func CreateFamilyHandler(svc FamilyService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := bindFamily(c)
		if err != nil {
			return handler.Error(c, err)
		}
		f, err := svc.Create(c.Request().Context(), middleware.SessionFrom(c), req)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusCreated, toResponse(*f))
	}
}

// UpdateFamilyHandler replaces a family; members left out of the payload are removed.
// @Summary     Update a family
// @Tags        familias
// @Accept      json
// @Produce     json
// @Param       id   path     int               true "ID da família"
// @Param       body body     api.FamilyRequest true "Família"
// @Success     200  {object} api.FamilyResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     403  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /familias/{id} [put]
func UpdateFamilyHandler(svc FamilyService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c.Param("id"))
		if err != nil {
			return handler.Error(c, err)
		}
		req, err := bindFamily(c)
		if err != nil {
			return handler.Error(c, err)
		}
		f, err := svc.Update(c.Request().Context(), middleware.SessionFrom(c), id, req)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(*f))
	}
}
