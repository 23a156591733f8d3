package auth

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/cache"
	"gestor-politico/internal/handler"

	"github.com/labstack/echo/v4"
)

// LogoutHandler revokes a refresh token. Unknown tokens are not an error.
// @Summary     Logout
// @Tags        auth
// @Accept      json
// @Param       body body api.RefreshRequest true "Refresh token"
// @Success     204
// @Failure     400 {object} api.ErrorResponse
// @Router      /auth/logout [post]
func LogoutHandler(c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req api.RefreshRequest
		if err := ctx.Bind(&req); err != nil {
			return handler.BadRequest(ctx, "corpo da requisição inválido")
		}
		if err := ctx.Validate(&req); err != nil {
			return handler.Error(ctx, err)
		}
		if err := revokeRefreshToken(ctx.Request().Context(), c, req.RefreshToken); err != nil {
			return handler.Error(ctx, err)
		}
		return ctx.NoContent(http.StatusNoContent)
	}
}
