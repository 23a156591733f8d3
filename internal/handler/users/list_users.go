package users

import (
	"errors"
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// ListUsersHandler lists every user ordered by name.
// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     403 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /usuarios [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return handler.Error(c, err)
		}
		resp := make([]api.UserResponse, 0, len(list))
		for _, u := range list {
			resp = append(resp, toResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetUserHandler returns one user.
// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     int true "ID do usuário"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /usuarios/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c.Param("id"))
		if err != nil {
			return handler.Error(c, err)
		}
		u, err := getUserByID(c.Request().Context(), db, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return handler.Error(c, apperr.NotFound("usuário %d não encontrado", id))
		}
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(*u))
	}
}
