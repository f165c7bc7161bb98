package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "locallibrary_backend/internals/features/users/user/route"
	"locallibrary_backend/internals/helpers/i18n"
)

func UserAdminRoutes(admin fiber.Router, db *gorm.DB, cat *i18n.Catalog) {
	userRoute.UserAdminRoutes(admin, db, cat)
}
