package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tanglome/content-api/internal/core/domain"
)

func render(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrContentNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrSlugTaken, http.StatusConflict},
		{domain.ErrResetTokenInvalid, http.StatusBadRequest},
		{domain.ErrSelfAdminAction, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec, body := render(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body.Message == "" {
			t.Errorf("%v: expected a message", tc.err)
		}
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	ve := domain.Invalid("title", "title must be between 5 and 200 characters")
	rec, body := render(t, ve)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "title" {
		t.Fatalf("expected field errors in body, got %+v", body)
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	rec, _ := render(t, fmt.Errorf("load content: %w", domain.ErrContentNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected wrapped error to map to 404, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := render(t, echo.NewHTTPError(http.StatusTooManyRequests, "slow down"))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if body.Message != "slow down" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := render(t, errors.New("driver exploded"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Message)
	}
}
