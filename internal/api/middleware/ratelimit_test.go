package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *stubLimiter) Allow(_ context.Context, clientKey string) (bool, error) {
	l.keys = append(l.keys, clientKey)
	return l.allow, l.err
}

func runRateLimit(t *testing.T, limiter *stubLimiter) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RateLimit(limiter, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRateLimit_Allows(t *testing.T) {
	limiter := &stubLimiter{allow: true}
	rec := runRateLimit(t, limiter)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "203.0.113.7" {
		t.Fatalf("expected limiter keyed by client IP, got %v", limiter.keys)
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	rec := runRateLimit(t, &stubLimiter{allow: false})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	rec := runRateLimit(t, &stubLimiter{err: errors.New("redis down")})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when limiter is down, got %d", rec.Code)
	}
}
