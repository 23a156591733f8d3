package handler

import (
	"log/slog"

	"gestor-politico/internal/api"
	"gestor-politico/internal/apperr"

	"github.com/labstack/echo/v4"
)

// Error writes err as {"message": ...} with the status of its kind. Internal
// errors are logged and answered with a generic message.
func Error(c echo.Context, err error) error {
	status := apperr.Status(err)
	if apperr.KindOf(err) == apperr.KindInternal {
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}
	return c.JSON(status, api.ErrorResponse{Message: apperr.Message(err)})
}

// BadRequest answers a body or query string that could not be bound.
func BadRequest(c echo.Context, msg string) error {
	return Error(c, apperr.Validation("%s", msg))
}
