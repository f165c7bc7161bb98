package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"locallibrary_backend/internals/helpers/i18n"
)

// LocaleMiddleware picks the response language from ?lang= or Accept-Language.
func LocaleMiddleware(cat *i18n.Catalog) fiber.Handler {
	supported := cat.Supported()
	return func(c *fiber.Ctx) error {
		locale := ""
		if q := strings.ToLower(strings.TrimSpace(c.Query("lang"))); q != "" {
			for _, s := range supported {
				if s == q {
					locale = q
					break
				}
			}
		}
		if locale == "" {
			locale = c.AcceptsLanguages(supported...)
		}
		if locale == "" {
			locale = cat.DefaultLocale()
		}
		c.Locals(i18n.LocLocale, locale)
		c.Set(fiber.HeaderContentLanguage, locale)
		return c.Next()
	}
}
