package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tanglome/content-api/internal/core/domain"
)

func contextWithUser(e *echo.Echo, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(userContextKey, user)
	}
	return c, rec
}

func TestRequireRoles_Allowed(t *testing.T) {
	e := echo.New()
	c, rec := contextWithUser(e, &domain.User{ID: "u1", Role: domain.RoleAdmin})

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	e := echo.New()
	c, _ := contextWithUser(e, &domain.User{ID: "u1", Role: domain.RoleUser})

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRoles_NoUser(t *testing.T) {
	e := echo.New()
	c, rec := contextWithUser(e, nil)

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
