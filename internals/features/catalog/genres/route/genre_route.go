package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/catalog/genres/controller"
	"locallibrary_backend/internals/helpers/i18n"
)

// GenrePublicRoutes is read-only. Base: /api/public/catalog
func GenrePublicRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog) {
	ctl := controller.NewGenreController(db, cat)

	g := r.Group("/genres")
	g.Get("/list", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

// GenreAdminRoutes manages genres. Base: /api/a/catalog
func GenreAdminRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog) {
	ctl := controller.NewGenreController(db, cat)

	g := r.Group("/genres")
	g.Get("/list", ctl.List)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
