package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/catalog/book_instances/controller"
	"locallibrary_backend/internals/features/catalog/book_instances/model"
	"locallibrary_backend/internals/helpers/i18n"
	authMiddleware "locallibrary_backend/internals/middlewares/auth"
)

// BookInstanceUserRoutes serves the signed-in borrower. Base: /api/u/catalog
func BookInstanceUserRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog) {
	ctl := controller.NewBookInstanceController(db, cat)

	r.Get("/my-loans", ctl.MyLoans)
}

// BookInstanceAdminRoutes manages copies and loans. Base: /api/a/catalog
func BookInstanceAdminRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog) {
	ctl := controller.NewBookInstanceController(db, cat)
	canMarkReturned := authMiddleware.RequirePermission(cat, model.PermCanMarkReturned, authMiddleware.DBPermissions(db))

	g := r.Group("/book-instances")
	g.Get("/list", ctl.List)
	g.Get("/borrowed", canMarkReturned, ctl.Borrowed)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/return", canMarkReturned, ctl.MarkReturned)
	g.Post("/:id/renew", canMarkReturned, ctl.Renew)
}
