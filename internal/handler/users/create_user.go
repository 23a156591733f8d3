package users

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/model"

	"github.com/labstack/echo/v4"
)

// CreateUserHandler creates a login.
// @Summary     Create a user
// @Description Cria um usuário; o e-mail é convertido para minúsculas
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "Usuário"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /usuarios [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return handler.BadRequest(c, "corpo da requisição inválido")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Error(c, err)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return handler.Error(c, err)
		}
		created, err := createUser(c.Request().Context(), db, &model.User{
			Username:     normalizeUsername(req.Username),
			PasswordHash: hash,
			Name:         req.Name,
			Role:         model.Role(req.Role),
		})
		if err != nil {
			return handler.Error(c, writeErr(err))
		}
		return c.JSON(http.StatusCreated, toResponse(*created))
	}
}
