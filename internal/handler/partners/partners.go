package partners

import (
	"net/http"
	"strconv"

	"gestor-politico/internal/api"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/model"
	"gestor-politico/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	promotePartner = service.PromotePartner
	partnerByToken = service.PartnerByToken
)

func toResponse(p model.Partner) api.PartnerResponse {
	return api.PartnerResponse{ID: p.ID, Name: p.MemberName, Token: p.Token}
}

// PromoteHandler turns a member into a partner. Repeated calls return the
// same partner.
// @Summary     Promote member to partner
// @Tags        parceiros
// @Produce     json
// @Param       id  path     int true "ID do membro"
// @Success     200 {object} api.PartnerResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /membros/{id}/parceiro [post]
func PromoteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			return handler.BadRequest(c, "id de membro inválido")
		}
		p, err := promotePartner(c.Request().Context(), db, id)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(*p))
	}
}

// GetByTokenHandler resolves a partner token.
// @Summary     Get partner by token
// @Tags        parceiros
// @Produce     json
// @Param       token path     string true "Token do parceiro"
// @Success     200   {object} api.PartnerResponse
// @Failure     404   {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /parceiros/{token} [get]
func GetByTokenHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := partnerByToken(c.Request().Context(), db, c.Param("token"))
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(*p))
	}
}
