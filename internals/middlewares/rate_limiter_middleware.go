package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"locallibrary_backend/internals/helpers/i18n"
)

func rateLimited(cat *i18n.Catalog) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return cat.Error(c, fiber.StatusTooManyRequests, "msg.rate_limited")
	}
}

// GlobalRateLimiter applies to every endpoint.
func GlobalRateLimiter(cat *i18n.Catalog) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimited(cat),
	})
}

// LoginRateLimiter is the stricter limit for the login route.
func LoginRateLimiter(cat *i18n.Catalog) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimited(cat),
	})
}
