// Package stats serves the catalog home counters.
package stats

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authorModel "locallibrary_backend/internals/features/catalog/authors/model"
	instanceModel "locallibrary_backend/internals/features/catalog/book_instances/model"
	bookModel "locallibrary_backend/internals/features/catalog/books/model"
	genreModel "locallibrary_backend/internals/features/catalog/genres/model"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
)

type CatalogStats struct {
	NumBooks              int64 `json:"num_books"`
	NumInstances          int64 `json:"num_instances"`
	NumInstancesAvailable int64 `json:"num_instances_available"`
	NumAuthors            int64 `json:"num_authors"`
	NumGenres             int64 `json:"num_genres"`
}

type StatsController struct {
	DB   *gorm.DB
	I18n *i18n.Catalog
}

func NewStatsController(db *gorm.DB, cat *i18n.Catalog) *StatsController {
	return &StatsController{DB: db, I18n: cat}
}

// Collect runs one COUNT per counter.
func Collect(db *gorm.DB) (CatalogStats, error) {
	var s CatalogStats
	counts := []struct {
		model interface{}
		where string
		args  []interface{}
		dst   *int64
	}{
		{model: &bookModel.BookModel{}, dst: &s.NumBooks},
		{model: &instanceModel.BookInstanceModel{}, dst: &s.NumInstances},
		{model: &instanceModel.BookInstanceModel{}, where: "book_instance_status = ?", args: []interface{}{instanceModel.StatusAvailable}, dst: &s.NumInstancesAvailable},
		{model: &authorModel.AuthorModel{}, dst: &s.NumAuthors},
		{model: &genreModel.GenreModel{}, dst: &s.NumGenres},
	}
	for _, q := range counts {
		tx := db.Model(q.model)
		if q.where != "" {
			tx = tx.Where(q.where, q.args...)
		}
		if err := tx.Count(q.dst).Error; err != nil {
			return CatalogStats{}, err
		}
	}
	return s, nil
}

// GET /stats
func (ctl *StatsController) Get(c *fiber.Ctx) error {
	s, err := Collect(ctl.DB.WithContext(c.UserContext()))
	if err != nil {
		log.Printf("[ERROR] catalog stats: %v", err)
		return ctl.I18n.DBError(c, err)
	}
	return helper.JsonOK(c, ctl.I18n.TC(c, "msg.ok"), s)
}

// StatsRoutes mounts GET /stats. Base: /api/public/catalog
func StatsRoutes(r fiber.Router, db *gorm.DB, cat *i18n.Catalog) {
	ctl := NewStatsController(db, cat)
	r.Get("/stats", ctl.Get)
}
