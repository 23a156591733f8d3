package handler

import (
	"net/http"
	"time"

	"gestor-politico/internal/api"
	"gestor-politico/internal/cache"
	"gestor-politico/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse health check response
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler checks the database and the cache.
// @Summary     Health check
// @Description Responde pong quando o banco de dados e o cache estão acessíveis
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if err := db.Ping(ctx.Request().Context()); err != nil {
			return ctx.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := c.Set(ctx.Request().Context(), cache.Key("ping"), "pong", time.Minute).Err(); err != nil {
			return ctx.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return ctx.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
