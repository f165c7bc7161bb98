package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/catalog/authors/dto"
	"locallibrary_backend/internals/features/catalog/authors/model"
	bookModel "locallibrary_backend/internals/features/catalog/books/model"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
	"locallibrary_backend/internals/helpers/urls"
)

type AuthorController struct {
	DB   *gorm.DB
	I18n *i18n.Catalog
	URLs urls.Reverser
}

func NewAuthorController(db *gorm.DB, cat *i18n.Catalog, rev urls.Reverser) *AuthorController {
	return &AuthorController{DB: db, I18n: cat, URLs: rev}
}

func (ctl *AuthorController) toResponse(m model.AuthorModel) dto.AuthorResponse {
	resp := dto.FromModel(m)
	if u, err := m.AbsoluteURL(ctl.URLs); err == nil {
		resp.URL = u
	} else {
		log.Printf("[ERROR] reverse author url: %v", err)
	}
	return resp
}

// GET /authors/list?q=&page=&per_page=
func (ctl *AuthorController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.AuthorModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + s + "%"
		q = q.Where("author_last_name ILIKE ? OR author_first_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}

	var rows []model.AuthorModel
	if err := q.Order("author_last_name ASC, author_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}

	out := make([]dto.AuthorResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ctl.toResponse(r))
	}
	return helper.JsonList(c, ctl.I18n.TC(c, "msg.ok"), out, helper.BuildPagination(total, p))
}

// GET /authors/:id (author-detail), with the author's books.
func (ctl *AuthorController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}

	var books []bookModel.BookModel
	if err := ctl.DB.Where("book_author_id = ?", m.AuthorID).
		Order("book_title ASC").Find(&books).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}

	resp := ctl.toResponse(*m)
	resp.Books = make([]dto.AuthorBookItem, 0, len(books))
	for _, b := range books {
		item := dto.AuthorBookItem{BookID: b.BookID, BookTitle: b.BookTitle}
		if u, err := b.AbsoluteURL(ctl.URLs); err == nil {
			item.URL = u
		}
		resp.Books = append(resp.Books, item)
	}
	return helper.JsonOK(c, ctl.I18n.TC(c, "msg.ok"), resp)
}

// POST /authors
func (ctl *AuthorController) Create(c *fiber.Ctx) error {
	m, err := ctl.bind(c, nil)
	if err != nil {
		return err
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create author: %v", err)
		return ctl.I18n.SaveError(c, err)
	}
	return helper.JsonCreated(c, ctl.I18n.TC(c, "msg.author.created"), ctl.toResponse(*m))
}

// PUT /authors/:id
func (ctl *AuthorController) Update(c *fiber.Ctx) error {
	existing, err := ctl.find(c)
	if err != nil {
		return err
	}
	m, err := ctl.bind(c, existing)
	if err != nil {
		return err
	}

	if err := ctl.DB.Save(m).Error; err != nil {
		log.Printf("[ERROR] update author %s: %v", m.AuthorID, err)
		return ctl.I18n.SaveError(c, err)
	}
	return helper.JsonUpdated(c, ctl.I18n.TC(c, "msg.author.updated"), ctl.toResponse(*m))
}

// DELETE /authors/:id. Books keep existing with a null author.
func (ctl *AuthorController) Delete(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	if err := ctl.DB.Delete(m).Error; err != nil {
		log.Printf("[ERROR] delete author %s: %v", m.AuthorID, err)
		return ctl.I18n.DBError(c, err)
	}
	return helper.JsonDeleted(c, ctl.I18n.TC(c, "msg.author.deleted"), fiber.Map{"author_id": m.AuthorID})
}

// bind parses and validates the body onto target (a new model when nil).
func (ctl *AuthorController) bind(c *fiber.Ctx, target *model.AuthorModel) (*model.AuthorModel, error) {
	var req dto.AuthorRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_payload")
	}
	req.Normalize()
	if errs := ctl.I18n.ValidateStruct(ctl.I18n.LocaleOf(c), &req); errs != nil {
		return nil, ctl.I18n.InvalidError(c, errs)
	}

	if target == nil {
		target = &model.AuthorModel{}
	}
	if err := req.ApplyToModel(target); err != nil {
		return nil, ctl.I18n.WrapSaveError(c, err)
	}
	if err := target.Validate(); err != nil {
		return nil, ctl.I18n.WrapSaveError(c, err)
	}
	return target, nil
}

// find loads the author named by :id. Failures come back as *fiber.Error.
func (ctl *AuthorController) find(c *fiber.Ctx) (*model.AuthorModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_id")
	}
	var m model.AuthorModel
	if err := ctl.DB.First(&m, "author_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ctl.I18n.NewError(c, fiber.StatusNotFound, "msg.not_found")
		}
		log.Printf("[ERROR] load author %s: %v", id, err)
		return nil, ctl.I18n.NewError(c, fiber.StatusInternalServerError, "msg.db.error")
	}
	return &m, nil
}
