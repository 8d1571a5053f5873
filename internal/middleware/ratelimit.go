package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/arzan03/ThreadHive/internal/ratelimit"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RateLimit allows limit requests per window for each caller, keyed by the
// token email or, without one, the client IP. Limiter errors let the request
// through.
func RateLimit(limiter ratelimit.Limiter, limit int, window time.Duration, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "ip:" + c.IP()
		if email := Email(c); email != "" {
			key = "user:" + email
		}

		allowed, retryAfter, err := limiter.Allow(c.UserContext(), key, limit, window)
		if err != nil {
			logger.Warnw("rate limiter unavailable", "key", key, "error", err)
			return c.Next()
		}
		if !allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests, try again later")
		}
		return c.Next()
	}
}
