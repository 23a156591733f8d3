package auth

import (
	"errors"
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"
	"gestor-politico/internal/cache"
	"gestor-politico/internal/database"
	"gestor-politico/internal/handler"
	"gestor-politico/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// RefreshHandler exchanges a refresh token for a new access token.
// @Summary     Refresh access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RefreshRequest true "Refresh token"
// @Success     200  {object} api.TokenResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Router      /auth/refresh [post]
func RefreshHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req api.RefreshRequest
		if err := ctx.Bind(&req); err != nil {
			return handler.BadRequest(ctx, "corpo da requisição inválido")
		}
		if err := ctx.Validate(&req); err != nil {
			return handler.Error(ctx, err)
		}

		reqCtx := ctx.Request().Context()
		data, err := validateRefreshToken(reqCtx, c, req.RefreshToken)
		if err != nil {
			return handler.Error(ctx, err)
		}
		// the user may have been deleted since the token was issued
		user, err := getUserByID(reqCtx, db, data.UserID)
		if errors.Is(err, pgx.ErrNoRows) {
			return handler.Error(ctx, apperr.Unauthorized("refresh token inválido ou expirado"))
		}
		if err != nil {
			return handler.Error(ctx, err)
		}

		expires := timeNow().Add(service.AccessTokenTTL)
		access, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return handler.Error(ctx, err)
		}
		return ctx.JSON(http.StatusOK, api.TokenResponse{AccessToken: access, ExpiresAt: expires})
	}
}
