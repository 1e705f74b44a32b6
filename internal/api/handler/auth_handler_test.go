package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nevseti/fincloud-system/internal/api/middleware"
	"github.com/nevseti/fincloud-system/internal/core/auth"
	"github.com/nevseti/fincloud-system/internal/core/domain"
	"github.com/nevseti/fincloud-system/internal/core/ports"
)

type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginToken   string
	loginUser    *domain.User
	loginErr     error
	profileUser  *domain.User
	profileErr   error

	lastRegister ports.RegisterInput
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	s.lastRegister = input
	return s.registerUser, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return s.loginToken, s.loginUser, s.loginErr
}

func (s *stubAuthService) Profile(_ context.Context, _ auth.Claims) (*domain.User, error) {
	return s.profileUser, s.profileErr
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{registerUser: &domain.User{ID: 1, Email: "acc@fincloud.io", Role: domain.RoleAccountant, BranchID: 2}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/register",
		`{"email":"acc@fincloud.io","password":"secret","role":"accountant","branch_id":2}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if svc.lastRegister.Role != domain.RoleAccountant || svc.lastRegister.BranchID != 2 {
		t.Fatalf("service input = %+v, want request fields forwarded", svc.lastRegister)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID != 1 || resp.Email != "acc@fincloud.io" {
		t.Fatalf("response = %+v, want the created user", resp)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ValidationRejections(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"not-an-email","password":"secret","role":"accountant"}`},
		{"missing password", `{"email":"a@b.c","role":"accountant"}`},
		{"unknown role", `{"email":"a@b.c","password":"secret","role":"root"}`},
		{"negative branch", `{"email":"a@b.c","password":"secret","role":"accountant","branch_id":-1}`},
		{"not json", `email=a@b.c`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/register", tc.body)
			err := h.Register(c)

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("error = %v, want an HTTP 400", err)
			}
		})
	}
}

func TestAuthHandler_Register_ServiceError(t *testing.T) {
	// Domain errors pass through untouched for the central error handler.
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrEmailTaken})

	c, _ := newTestContext(http.MethodPost, "/register",
		`{"email":"dup@fincloud.io","password":"secret","role":"manager"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("error = %v, want ErrEmailTaken", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{loginToken: "tok-abc", loginUser: &domain.User{ID: 1}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/login", `{"email":"acc@fincloud.io","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.AccessToken != "tok-abc" || resp.TokenType != "bearer" {
		t.Fatalf("response = %+v, want bearer token envelope", resp)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newTestContext(http.MethodPost, "/login", `{"email":"acc@fincloud.io","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubAuthService{profileUser: &domain.User{ID: 7, Email: "acc@fincloud.io", Role: domain.RoleAccountant, BranchID: 1}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/users/me", "")
	c.Set(middleware.ContextKeyClaims, auth.Claims{UserID: 7, Role: domain.RoleAccountant, BranchID: 1})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID != 7 {
		t.Fatalf("response = %+v, want caller's profile", resp)
	}
}

func TestAuthHandler_Me_WithoutClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodGet, "/users/me", "")
	err := h.Me(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("error = %v, want an HTTP 401", err)
	}
}
