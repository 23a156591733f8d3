package users

import (
	"context"
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/model"

	"github.com/labstack/echo/v4"
)

// saveUser rewrites u and, when password is not empty, its password hash.
func saveUser(ctx context.Context, db database.DB, u *model.User, password string) error {
	var hash string
	if password != "" {
		var err error
		if hash, err = hashPassword(password); err != nil {
			return err
		}
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ok, err := updateUser(ctx, tx, u)
	if err != nil {
		return writeErr(err)
	}
	if !ok {
		return apperr.NotFound("usuário %d não encontrado", u.ID)
	}
	if hash != "" {
		if err := updateUserPassword(ctx, tx, u.ID, hash); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// UpdateUserHandler updates a user; an empty password keeps the current one.
// @Summary     Update a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "ID do usuário"
// @Param       body body     api.UpdateUserRequest true "Usuário"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /usuarios/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c.Param("id"))
		if err != nil {
			return handler.Error(c, err)
		}
		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}

		ctx := c.Request().Context()
		u := &model.User{ID: id, Username: normalizeUsername(req.Username), Name: req.Name, Role: model.Role(req.Role)}
		if err := saveUser(ctx, db, u, req.Password); err != nil {
			return handler.Error(c, err)
		}
		updated, err := getUserByID(ctx, db, id)
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusOK, toResponse(*updated))
	}
}
