package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
)

func newProtectedEcho(tokens *auth.TokenService) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		claims, ok := c.Get(ContextKeyClaims).(auth.Claims)
		if !ok {
			return echo.NewHTTPError(http.StatusInternalServerError, "claims missing")
		}
		bearer, ok := c.Get(ContextKeyBearer).(string)
		if !ok || bearer == "" {
			return echo.NewHTTPError(http.StatusInternalServerError, "bearer missing")
		}
		return c.JSON(http.StatusOK, map[string]any{"user_id": claims.UserID, "role": claims.Role})
	}, Auth(tokens))
	return e
}

func issue(t *testing.T, tokens *auth.TokenService, ttl time.Duration) string {
	t.Helper()
	claims := auth.Claims{UserID: 7, Email: "acc@fincloud.io", Role: domain.RoleAccountant, BranchID: 1}
	token, err := tokens.Issue(claims.AsMap(), ttl)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	return token
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 0)
	e := newProtectedEcho(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tokens, 0))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
}

func TestAuth_Rejections(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 0)
	e := newProtectedEcho(tokens)

	valid := issue(t, tokens, 0)
	expired := issue(t, tokens, -time.Minute)
	foreign, err := auth.NewTokenService("other-secret", 0).Issue(auth.Claims{UserID: 7, Role: domain.RoleAccountant}.AsMap(), 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	// Verified signature but unusable payload.
	noIdentity, err := tokens.Issue(map[string]any{"email": "x@y.z"}, 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic " + valid},
		{"bare token", valid},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + foreign},
		{"payload without identity", "Bearer " + noIdentity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			// Every rejection is the same generic 401.
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 0)
	e := newProtectedEcho(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "bearer "+issue(t, tokens, 0))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
