package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tanglome/content-api/internal/core/domain"
)

// userContextKey is where Auth stores the resolved account for handlers.
const userContextKey = "auth.user"

// TokenVerifier resolves a bearer token to the account it references.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}

// Auth validates the bearer token and injects the resolved user into the
// request context. Tokens referencing deleted accounts fail here, not later.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied: no token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := verifier.VerifyToken(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the account injected by Auth, or nil on public routes.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
