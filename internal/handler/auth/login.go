package auth

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/cache"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler authenticates with e-mail and password.
// @Summary     Login
// @Description Valida usuário e senha e devolve o token de acesso e o refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "Credenciais"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req api.LoginRequest
		if err := ctx.Bind(&req); err != nil {
			return handler.BadRequest(ctx, "corpo da requisição inválido")
		}
		if err := ctx.Validate(&req); err != nil {
			return handler.Error(ctx, err)
		}

		reqCtx := ctx.Request().Context()
		user, err := authenticateUser(reqCtx, db, req.Username, req.Password)
		if err != nil {
			return handler.Error(ctx, err)
		}

		expires := timeNow().Add(service.AccessTokenTTL)
		access, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return handler.Error(ctx, err)
		}
		refresh, err := issueRefreshToken(reqCtx, c, user.ID, service.RefreshTokenTTL)
		if err != nil {
			return handler.Error(ctx, err)
		}

		return ctx.JSON(http.StatusOK, api.LoginResponse{
			ID:           user.ID,
			Username:     user.Username,
			Name:         user.Name,
			Role:         string(user.Role),
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresAt:    expires,
		})
	}
}
