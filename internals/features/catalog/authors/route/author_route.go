package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/catalog/authors/controller"
	"locallibrary_backend/internals/helpers/i18n"
	"locallibrary_backend/internals/helpers/urls"
)

// AuthorPublicRoutes is read-only. Base: /api/public/catalog
func AuthorPublicRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog, rev urls.Reverser) {
	ctl := controller.NewAuthorController(db, cat, rev)

	g := r.Group("/authors")
	g.Get("/list", ctl.List)
	g.Get("/:id", ctl.GetByID).Name(urls.AuthorDetail)
}

// AuthorAdminRoutes manages authors. Base: /api/a/catalog
func AuthorAdminRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog, rev urls.Reverser) {
	ctl := controller.NewAuthorController(db, cat, rev)

	g := r.Group("/authors")
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
