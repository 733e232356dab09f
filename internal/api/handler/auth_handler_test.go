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

	"github.com/RuanParreira/arquitetura-cebola/internal/core/domain"
	"github.com/RuanParreira/arquitetura-cebola/internal/core/ports"
)

type stubAuthService struct {
	result *ports.AuthResult
	claims ports.TokenClaims
	err    error
}

func (s *stubAuthService) Authenticate(ctx context.Context, clientID, clientSecret string) (*ports.AuthResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubAuthService) VerifyToken(token string) (ports.TokenClaims, error) {
	if s.err != nil {
		return ports.TokenClaims{}, s.err
	}
	return s.claims, nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandlerLoginSuccess(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{result: &ports.AuthResult{
		Token: "signed-token",
		User:  domain.PublicUser{ID: "u1", Name: "Admin", Email: "admin@example.com", Role: "admin"},
	}})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"client_id":"admin_client","client_secret":"admin_secret_123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Message string            `json:"message"`
		Token   string            `json:"token"`
		User    domain.PublicUser `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Authentication successful" {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("token = %q", resp.Token)
	}
	if resp.User.ID != "u1" || resp.User.Role != "admin" {
		t.Fatalf("user = %+v", resp.User)
	}
}

func TestAuthHandlerLoginMissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"client_id":"only_id"}`)
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandlerLoginBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"client_id":"admin_client","client_secret":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandlerVerifyValid(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{claims: ports.TokenClaims{
		UserID: "u1", Email: "admin@example.com", Role: "admin",
	}})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/verify", `{"token":"sometoken"}`)
	if err := h.Verify(c); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Valid bool              `json:"valid"`
		User  ports.TokenClaims `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Valid || resp.User.UserID != "u1" {
		t.Fatalf("response = %+v", resp)
	}
}

func TestAuthHandlerVerifyInvalid(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidToken})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/verify", `{"token":"expired"}`)
	if err := h.Verify(c); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if valid, _ := resp["valid"].(bool); valid {
		t.Fatal("expected valid=false")
	}
}
