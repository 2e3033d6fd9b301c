package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	authpkg "github.com/jivehq/jive-api/internal/auth"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func performRequest(mw echo.MiddlewareFunc, req *http.Request, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(handler)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestJWT_MissingHeader(t *testing.T) {
	manager := authpkg.NewJWTManager("test-secret", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/payments", nil)

	rec := performRequest(JWT(manager), req, okHandler)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing header, got %d", rec.Code)
	}
}

func TestJWT_InvalidToken(t *testing.T) {
	manager := authpkg.NewJWTManager("test-secret", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := performRequest(JWT(manager), req, okHandler)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for invalid token, got %d", rec.Code)
	}
}

func TestJWT_TokenSignedWithOtherSecret(t *testing.T) {
	manager := authpkg.NewJWTManager("test-secret", time.Hour)
	forged, err := authpkg.NewJWTManager("other-secret", time.Hour).GenerateToken("id", "student@example.com", "student")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	rec := performRequest(JWT(manager), req, okHandler)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for forged token, got %d", rec.Code)
	}
}

func TestJWT_ValidTokenSetsContext(t *testing.T) {
	manager := authpkg.NewJWTManager("test-secret", time.Hour)
	token, err := manager.GenerateToken("user-id", "student@example.com", "student")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotEmail, gotRole string
	handler := func(c echo.Context) error {
		gotEmail, _ = c.Get(ContextKeyUserEmail).(string)
		gotRole, _ = c.Get(ContextKeyUserRole).(string)
		return c.String(http.StatusOK, "ok")
	}

	if err := JWT(manager)(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEmail != "student@example.com" || gotRole != "student" {
		t.Fatalf("unexpected context values: email=%q role=%q", gotEmail, gotRole)
	}
}
