package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/catalog/genres/dto"
	"locallibrary_backend/internals/features/catalog/genres/model"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
)

type GenreController struct {
	DB   *gorm.DB
	I18n *i18n.Catalog
}

func NewGenreController(db *gorm.DB, cat *i18n.Catalog) *GenreController {
	return &GenreController{DB: db, I18n: cat}
}

// GET /genres/list?q=&page=&per_page=
func (ctl *GenreController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.GenreModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("genre_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}

	var rows []model.GenreModel
	if err := q.Order("genre_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}

	return helper.JsonList(c, ctl.I18n.TC(c, "msg.ok"), dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /genres/:id
func (ctl *GenreController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, ctl.I18n.TC(c, "msg.ok"), dto.FromModel(*m))
}

// POST /genres
func (ctl *GenreController) Create(c *fiber.Ctx) error {
	var req dto.GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return ctl.I18n.Error(c, fiber.StatusBadRequest, "msg.invalid_payload")
	}
	req.Normalize()
	if errs := ctl.I18n.ValidateStruct(ctl.I18n.LocaleOf(c), &req); errs != nil {
		return ctl.I18n.Invalid(c, errs)
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		log.Printf("[ERROR] create genre: %v", err)
		return ctl.I18n.SaveError(c, err)
	}
	return helper.JsonCreated(c, ctl.I18n.TC(c, "msg.genre.created"), dto.FromModel(m))
}

// PUT /genres/:id
func (ctl *GenreController) Update(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req dto.GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return ctl.I18n.Error(c, fiber.StatusBadRequest, "msg.invalid_payload")
	}
	req.Normalize()
	if errs := ctl.I18n.ValidateStruct(ctl.I18n.LocaleOf(c), &req); errs != nil {
		return ctl.I18n.Invalid(c, errs)
	}

	req.ApplyToModel(m)
	if err := ctl.DB.Save(m).Error; err != nil {
		log.Printf("[ERROR] update genre %s: %v", m.GenreID, err)
		return ctl.I18n.SaveError(c, err)
	}
	return helper.JsonUpdated(c, ctl.I18n.TC(c, "msg.genre.updated"), dto.FromModel(*m))
}

// DELETE /genres/:id removes the genre and, through the FK, its book links.
func (ctl *GenreController) Delete(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(m).Error; err != nil {
		log.Printf("[ERROR] delete genre %s: %v", m.GenreID, err)
		return ctl.I18n.DBError(c, err)
	}
	return helper.JsonDeleted(c, ctl.I18n.TC(c, "msg.genre.deleted"), fiber.Map{"genre_id": m.GenreID})
}

// find loads the genre named by :id. Failures come back as *fiber.Error.
func (ctl *GenreController) find(c *fiber.Ctx) (*model.GenreModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_id")
	}
	var m model.GenreModel
	if err := ctl.DB.First(&m, "genre_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ctl.I18n.NewError(c, fiber.StatusNotFound, "msg.not_found")
		}
		log.Printf("[ERROR] load genre %s: %v", id, err)
		return nil, ctl.I18n.NewError(c, fiber.StatusInternalServerError, "msg.db.error")
	}
	return &m, nil
}
