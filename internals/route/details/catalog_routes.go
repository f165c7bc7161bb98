package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/catalog/admin"
	authorRoute "locallibrary_backend/internals/features/catalog/authors/route"
	instanceRoute "locallibrary_backend/internals/features/catalog/book_instances/route"
	bookRoute "locallibrary_backend/internals/features/catalog/books/route"
	genreRoute "locallibrary_backend/internals/features/catalog/genres/route"
	"locallibrary_backend/internals/features/catalog/stats"
	"locallibrary_backend/internals/helpers/i18n"
	"locallibrary_backend/internals/helpers/urls"
)

// Catalog groups, relative to the app root. Staff routes live under /api/a/catalog.
const (
	CatalogPublicPrefix = "/api/public/catalog"
	CatalogUserPrefix   = "/api/u/catalog"
)

// CatalogURLNames are the named detail routes used as record locators.
var CatalogURLNames = []string{urls.BookDetail, urls.AuthorDetail}

func CatalogPublicRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog, rev urls.Reverser) {
	stats.StatsRoutes(r, db, cat)
	genreRoute.GenrePublicRoutes(r, db, cat)
	authorRoute.AuthorPublicRoutes(r, db, cat, rev)
	bookRoute.BookPublicRoutes(r, db, cat, rev)
}

func CatalogUserRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog) {
	instanceRoute.BookInstanceUserRoutes(r, db, cat)
}

func CatalogAdminRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog, rev urls.Reverser) {
	admin.SchemaRoutes(r, cat)
	genreRoute.GenreAdminRoutes(r, db, cat)
	authorRoute.AuthorAdminRoutes(r, db, cat, rev)
	bookRoute.BookAdminRoutes(r, db, cat, rev)
	instanceRoute.BookInstanceAdminRoutes(r, db, cat)
}
