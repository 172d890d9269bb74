package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tanglome/content-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Errors
// carries per-field detail for validation failures and is omitted otherwise.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures as {"message": ..., "errors": [...]}.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Field-level validation failures keep their detail.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Message: "validation failed", Errors: ve.Fields}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Message: "invalid credentials"}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, errorResponse{Message: "invalid token"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: "access forbidden"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Message: "user not found"}
	case errors.Is(err, domain.ErrContentNotFound):
		return http.StatusNotFound, errorResponse{Message: "content not found"}
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, errorResponse{Message: "an account with this email already exists"}
	case errors.Is(err, domain.ErrSlugTaken):
		return http.StatusConflict, errorResponse{Message: "content with this title already exists"}
	case errors.Is(err, domain.ErrResetTokenInvalid):
		return http.StatusBadRequest, errorResponse{Message: "invalid or expired reset token"}
	case errors.Is(err, domain.ErrSelfAdminAction):
		return http.StatusBadRequest, errorResponse{Message: "admins cannot perform this action on their own account"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "internal server error"}
}
