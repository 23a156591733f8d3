package middleware

import (
	"net/http"
	"strings"

	"gestor-politico/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextSessionKey = "session"

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token ausente")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "cabeçalho Authorization inválido")
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token inválido ou expirado")
	}
	return claims, nil
}

// RequireAuth verifies the bearer token and stores the request Session.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextSessionKey, service.SessionFromClaims(claims))
		return next(c)
	}
}

func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		if !SessionFrom(c).IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "acesso restrito a administradores")
		}
		return next(c)
	})
}

// SessionFrom returns the session set by RequireAuth; the zero Session when absent.
func SessionFrom(c echo.Context) service.Session {
	s, _ := c.Get(ContextSessionKey).(service.Session)
	return s
}
