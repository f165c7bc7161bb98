package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/constants"
	"locallibrary_backend/internals/helpers/i18n"
	"locallibrary_backend/internals/helpers/urls"
	authMiddleware "locallibrary_backend/internals/middlewares/auth"
	routeDetails "locallibrary_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts every group and returns the named-route registry.
func SetupRoutes(app *fiber.App, db *gorm.DB, cat *i18n.Catalog) *urls.Registry {
	startTime = time.Now()

	reg := urls.NewRegistry()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, cat)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group(routeDetails.CatalogPublicPrefix)

	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group(routeDetails.CatalogUserPrefix,
		authMiddleware.AuthMiddleware(db, cat),
	)

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db, cat),
	)
	staff := admin.Group("/catalog",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStaff("catalog management"), constants.StaffRoles),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Catalog routes...")
	routeDetails.CatalogPublicRoutes(public, db, cat, reg)
	routeDetails.CatalogUserRoutes(user, db, cat)
	routeDetails.CatalogAdminRoutes(staff, db, cat, reg)

	log.Println("[INFO] Mounting User admin routes...")
	routeDetails.UserAdminRoutes(admin, db, cat)

	if err := reg.Load(app, routeDetails.CatalogURLNames...); err != nil {
		log.Fatalf("named routes: %v", err)
	}
	return reg
}
