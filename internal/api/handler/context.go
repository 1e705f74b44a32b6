package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nevseti/fincloud-system/internal/api/middleware"
	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
)

// ctxClaims extracts the identity claims injected by the Auth middleware
// and performs a fast-fail check before any service call: a missing or
// untyped value proves the middleware did not run for this route.
func ctxClaims(c echo.Context) (auth.Claims, error) {
	claims, ok := c.Get(middleware.ContextKeyClaims).(auth.Claims)
	if !ok || claims.UserID == 0 {
		return auth.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxBearer returns the raw token the Auth middleware stored, for services
// that forward the caller's identity downstream.
func ctxBearer(c echo.Context) string {
	bearer, _ := c.Get(middleware.ContextKeyBearer).(string)
	return bearer
}

// queryBranch parses the optional branch_id query parameter.
// Absent means domain.BranchAll (no explicit request); a malformed or
// negative value is a client input error.
func queryBranch(c echo.Context) (int, error) {
	raw := c.QueryParam("branch_id")
	if raw == "" {
		return domain.BranchAll, nil
	}
	branch, err := strconv.Atoi(raw)
	if err != nil || branch < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "branch_id must be a non-negative integer")
	}
	return branch, nil
}
