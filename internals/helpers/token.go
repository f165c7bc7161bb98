package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocRawToken is where the auth middleware keeps the verified raw JWT.
const LocRawToken = "raw_token"

// GetRawAccessToken returns the access token from, in order:
// Locals("raw_token"), the Authorization bearer header, the "access_token" cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	fields := strings.Fields(c.Get("Authorization"))
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		return strings.Trim(fields[1], "\"'")
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}
