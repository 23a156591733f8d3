package families

import (
	"net/http"

	"gestor-politico/internal/api"
	"gestor-politico/internal/handler"

	"github.com/labstack/echo/v4"
)

// BackfillHandler queues geocoding of the addresses still without coordinates.
// @Summary     Geocode pending addresses
// @Description Enfileira a geocodificação dos endereços sem coordenadas
// @Tags        familias
// @Produce     json
// @Success     202 {object} api.BackfillResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /familias/geocodificar [post]
func BackfillHandler(b Backfiller) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := b.Backfill(c.Request().Context())
		if err != nil {
			return handler.Error(c, err)
		}
		return c.JSON(http.StatusAccepted, api.BackfillResponse{Queued: n})
	}
}
