package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "locallibrary_backend/internals/features/users/auth/repository"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
)

// PermissionLookup reports whether userID currently holds codename.
type PermissionLookup func(userID uuid.UUID, codename string) (bool, error)

// DBPermissions reads grants from user_permissions.
func DBPermissions(db *gorm.DB) PermissionLookup {
	return func(userID uuid.UUID, codename string) (bool, error) {
		return authRepo.UserHasPermission(db, userID, codename)
	}
}

// RequirePermission checks the stored grants on every request, so a revoke
// applies before the caller's token expires.
func RequirePermission(cat *i18n.Catalog, codename string, lookup PermissionLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return cat.Error(c, fiber.StatusForbidden, "msg.permission_needed", cat.TC(c, "permission."+codename))
		}
		granted, err := lookup(userID, codename)
		if err != nil {
			log.Printf("[ERROR] permission lookup %s: %v", codename, err)
			return cat.NewError(c, fiber.StatusInternalServerError, "msg.db.error")
		}
		if granted {
			return c.Next()
		}
		log.Printf("[INFO] permission %s denied for user %s", codename, userID)
		return cat.Error(c, fiber.StatusForbidden, "msg.permission_needed", cat.TC(c, "permission."+codename))
	}
}
