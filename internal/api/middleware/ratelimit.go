package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tanglome/content-api/internal/api/metrics"
)

// Allower decides whether a client may issue one more request.
type Allower interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

// RateLimit rejects requests from clients that exhausted their window budget.
// A failing limiter backend lets traffic through; availability wins over
// strict accounting here.
func RateLimit(limiter Allower, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"too many requests from this IP, please try again later")
			}
			return next(c)
		}
	}
}
