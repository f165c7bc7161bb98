package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/users/auth/controller"
	"locallibrary_backend/internals/helpers/i18n"
	rateLimiter "locallibrary_backend/internals/middlewares"
	authMiddleware "locallibrary_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(app *fiber.App, db *gorm.DB, cat *i18n.Catalog) {
	authController := controller.NewAuthController(db, cat)

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(cat), authController.Login)

	protected := baseAuth.Group("", authMiddleware.AuthMiddleware(db, cat))
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
}
