package users

import (
	"errors"
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/middleware"
	"gestor-politico/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// GetProfileHandler returns the logged in user.
// @Summary     Get current user
// @Tags        perfil
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /perfil [get]
func GetProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFrom(c)
		u, err := getUserByID(c.Request().Context(), db, sess.UserID)
		if errors.Is(err, pgx.ErrNoRows) {
			return handler.Error(c, apperr.Unauthorized("usuário da sessão não existe mais"))
		}
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(*u))
	}
}

// UpdateProfileHandler updates name, e-mail and optionally the password of
// the logged in user. The role is kept.
// @Summary     Update current user
// @Tags        perfil
// @Accept      json
// @Produce     json
// @Param       body body     api.UpdateProfileRequest true "Perfil"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /perfil [put]
func UpdateProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}

		ctx := c.Request().Context()
		sess := middleware.SessionFrom(c)
		current, err := getUserByID(ctx, db, sess.UserID)
		if errors.Is(err, pgx.ErrNoRows) {
			return handler.Error(c, apperr.Unauthorized("usuário da sessão não existe mais"))
		}
		if err != nil {
			return handler.Error(c, err)
		}

		u := &model.User{ID: current.ID, Username: normalizeUsername(req.Username), Name: req.Name, Role: current.Role}
		if err := saveUser(ctx, db, u, req.Password); err != nil {
			return handler.Error(c, err)
		}
		u.CreatedAt = current.CreatedAt
		return c.JSON(http.StatusOK, toResponse(*u))
	}
}
