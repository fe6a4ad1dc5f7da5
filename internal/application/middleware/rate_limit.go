package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"climate-api/internal/domain/gateway/ratelimit"
	"climate-api/internal/domain/model"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"
)

// RateLimit rejects clients over their per-IP budget with 429.
// When the limiter itself fails the request is let through.
func RateLimit(gateway ratelimit.RateLimitGateway) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipAmbient(c) {
				return next(c)
			}

			decision, err := gateway.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn(msg.GetMessage("rate-limit.unavailable", err), zap.Error(err))
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				header.Set("Retry-After", strconv.Itoa(int(math.Ceil(decision.ResetIn.Seconds()))))
				return c.JSON(http.StatusTooManyRequests, model.ErrorResponse{Error: msg.GetMessage("rate-limit.exceeded")})
			}

			return next(c)
		}
	}
}

// SetupRateLimit registers RateLimit on every route
func SetupRateLimit(e *echo.Echo, gateway ratelimit.RateLimitGateway) {
	e.Use(RateLimit(gateway))
}
