package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/constants"
	userController "locallibrary_backend/internals/features/users/user/controller"
	"locallibrary_backend/internals/helpers/i18n"
	authMiddleware "locallibrary_backend/internals/middlewares/auth"
)

// UserAdminRoutes manages accounts and their permissions. Base: /api/a
func UserAdminRoutes(app fiber.Router, db *gorm.DB, cat *i18n.Catalog) {
	adminCtrl := userController.NewAdminUserController(db, cat)

	users := app.Group("/users",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("user management"), constants.AdminOnly),
	)

	users.Get("/list", adminCtrl.GetUsers)
	users.Get("/:id", adminCtrl.GetUserByID)
	users.Post("/", adminCtrl.CreateUser)
	users.Put("/:id", adminCtrl.UpdateUser)
	users.Post("/:id/permissions/:codename", adminCtrl.GrantPermission)
	users.Delete("/:id/permissions/:codename", adminCtrl.RevokePermission)
}
