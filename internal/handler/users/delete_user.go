package users

import (
	"net/http"

	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/middleware"

	"github.com/labstack/echo/v4"
)

// DeleteUserHandler removes a user. Administrators cannot remove themselves.
// @Summary     Delete a user
// @Tags        users
// @Param       id path int true "ID do usuário"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /usuarios/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c.Param("id"))
		if err != nil {
			return handler.Error(c, err)
		}
		if id == middleware.SessionFrom(c).UserID {
			return handler.Error(c, apperr.Validation("não é possível excluir o próprio usuário"))
		}
		ok, err := deleteUser(c.Request().Context(), db, id)
		if err != nil {
			return handler.Error(c, err)
		}
		if !ok {
			return handler.Error(c, apperr.NotFound("usuário %d não encontrado", id))
		}
		return c.NoContent(http.StatusNoContent)
	}
}
