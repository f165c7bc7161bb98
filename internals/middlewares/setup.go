package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"locallibrary_backend/internals/helpers/i18n"
	"locallibrary_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain.
func SetupMiddlewares(app *fiber.App, cat *i18n.Catalog) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(LocaleMiddleware(cat))
	app.Use(GlobalRateLimiter(cat))
}
