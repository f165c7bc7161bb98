package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "locallibrary_backend/internals/features/users/auth/route"
	"locallibrary_backend/internals/helpers/i18n"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, cat *i18n.Catalog) {
	authRoute.AuthRoutes(app, db, cat)
}
