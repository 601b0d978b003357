package middleware

import (
	"net/http"
	"time"

	"signly/internal/caching"
	"signly/internal/common"

	"github.com/labstack/echo/v4"
)

// Default windows for the authentication endpoints.
const (
	LoginRateLimit      = 5
	RegisterRateLimit   = 3
	AuthRateLimitWindow = 15 * time.Minute
)

// RateLimit applies a fixed-window limit per client address to a route
// group. scope keeps login and register counters separate for the same
// address.
func RateLimit(store caching.CounterStore, scope string, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := scope + ":" + c.RealIP()
			count, err := store.Incr(c.Request().Context(), key, window)
			if err != nil {
				// Counter store being down should not lock everyone out.
				c.Logger().Warnf("rate limit store error: %v", err)
				return next(c)
			}
			if count > int64(limit) {
				return common.SendError(c, http.StatusTooManyRequests, common.CodeRateLimitExceeded, "Too many attempts, try again later")
			}
			return next(c)
		}
	}
}
