package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/catalog/books/controller"
	"locallibrary_backend/internals/helpers/i18n"
	"locallibrary_backend/internals/helpers/urls"
)

// BookPublicRoutes is read-only. Base: /api/public/catalog
func BookPublicRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog, rev urls.Reverser) {
	ctl := controller.NewBookController(db, cat, rev)

	g := r.Group("/books")
	g.Get("/list", ctl.List)
	g.Get("/:id", ctl.GetByID).Name(urls.BookDetail)
}

// BookAdminRoutes manages books and their genres. Base: /api/a/catalog
func BookAdminRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog, rev urls.Reverser) {
	ctl := controller.NewBookController(db, cat, rev)

	g := r.Group("/books")
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
