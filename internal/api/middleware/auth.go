package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nevseti/fincloud-system/internal/api/metrics"
	"github.com/nevseti/fincloud-system/internal/core/auth"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeyClaims = "claims"
	ContextKeyBearer = "bearer"
)

// Auth extracts the bearer token, verifies it, and injects the typed
// identity claims plus the raw token into the echo context. Every failure
// is a generic 401: the reason (missing, malformed, expired, bad
// signature) is deliberately not revealed.
func Auth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			payload, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			claims, err := auth.ClaimsFromMap(payload)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextKeyClaims, claims)
			c.Set(ContextKeyBearer, parts[1])

			return next(c)
		}
	}
}
