package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	instanceDTO "locallibrary_backend/internals/features/catalog/book_instances/dto"
	instanceModel "locallibrary_backend/internals/features/catalog/book_instances/model"
	"locallibrary_backend/internals/features/catalog/books/dto"
	"locallibrary_backend/internals/features/catalog/books/model"
	genreModel "locallibrary_backend/internals/features/catalog/genres/model"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/i18n"
	"locallibrary_backend/internals/helpers/urls"
)

type BookController struct {
	DB   *gorm.DB
	I18n *i18n.Catalog
	URLs urls.Reverser
}

func NewBookController(db *gorm.DB, cat *i18n.Catalog, rev urls.Reverser) *BookController {
	return &BookController{DB: db, I18n: cat, URLs: rev}
}

// BookDetailResponse is the book-detail payload.
type BookDetailResponse struct {
	dto.BookResponse
	Instances []instanceDTO.BookInstanceResponse `json:"instances"`
}

func (ctl *BookController) toResponse(m model.BookModel) dto.BookResponse {
	resp := dto.FromModel(m)
	if u, err := m.AbsoluteURL(ctl.URLs); err == nil {
		resp.URL = u
	} else {
		log.Printf("[ERROR] reverse book url: %v", err)
	}
	if resp.Author != nil && m.Author != nil {
		if u, err := m.Author.AbsoluteURL(ctl.URLs); err == nil {
			resp.Author.URL = u
		}
	}
	return resp
}

// GET /books/list?q=&author_id=&genre_id=&page=&per_page=
func (ctl *BookController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	authorID, err := helper.ParseUUIDQuery(c, "author_id")
	if err != nil {
		return ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_query")
	}
	genreID, err := helper.ParseUUIDQuery(c, "genre_id")
	if err != nil {
		return ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_query")
	}

	q := ctl.DB.Model(&model.BookModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("book_title ILIKE ?", "%"+s+"%")
	}
	if authorID != nil {
		q = q.Where("book_author_id = ?", *authorID)
	}
	if genreID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM book_genres bg WHERE bg.book_genre_book_id = books.book_id AND bg.book_genre_genre_id = ?)", *genreID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}

	var rows []model.BookModel
	if err := model.WithGenres(q).Preload("Author").
		Order("book_title ASC").Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}

	out := make([]dto.BookResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ctl.toResponse(r))
	}
	return helper.JsonList(c, ctl.I18n.TC(c, "msg.ok"), out, helper.BuildPagination(total, p))
}

// GET /books/:id (book-detail): author, genres and copies in default order.
func (ctl *BookController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.find(c, ctl.DB)
	if err != nil {
		return err
	}

	var copies []instanceModel.BookInstanceModel
	if err := ctl.DB.Where("book_instance_book_id = ?", m.BookID).
		Scopes(instanceModel.OrderDefault).Find(&copies).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}
	for i := range copies {
		copies[i].Book = m
	}

	label := instanceDTO.StatusLabeler(func(key string, params ...string) string {
		return ctl.I18n.TC(c, key, params...)
	})
	return helper.JsonOK(c, ctl.I18n.TC(c, "msg.ok"), BookDetailResponse{
		BookResponse: ctl.toResponse(*m),
		Instances:    instanceDTO.FromModels(copies, label),
	})
}

// POST /books
func (ctl *BookController) Create(c *fiber.Ctx) error {
	req, err := ctl.bind(c)
	if err != nil {
		return err
	}

	m := req.ToModel()
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctl.ensureGenres(c, tx, req.GenreIDs); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return ctl.I18n.WrapSaveError(c, err)
		}
		return ctl.replaceGenres(c, tx, &m, req.GenreIDs)
	})
	if err != nil {
		log.Printf("[ERROR] create book: %v", err)
		return err
	}

	saved, err := ctl.load(c, ctl.DB, m.BookID)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, ctl.I18n.TC(c, "msg.book.created"), ctl.toResponse(*saved))
}

// PUT /books/:id replaces fields and the genre set.
func (ctl *BookController) Update(c *fiber.Ctx) error {
	m, err := ctl.find(c, ctl.DB)
	if err != nil {
		return err
	}
	req, err := ctl.bind(c)
	if err != nil {
		return err
	}

	req.ApplyToModel(m)
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := ctl.ensureGenres(c, tx, req.GenreIDs); err != nil {
			return err
		}
		m.Author = nil
		if err := tx.Omit(clause.Associations).Save(m).Error; err != nil {
			return ctl.I18n.WrapSaveError(c, err)
		}
		return ctl.replaceGenres(c, tx, m, req.GenreIDs)
	})
	if err != nil {
		log.Printf("[ERROR] update book %s: %v", m.BookID, err)
		return err
	}

	saved, err := ctl.load(c, ctl.DB, m.BookID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, ctl.I18n.TC(c, "msg.book.updated"), ctl.toResponse(*saved))
}

// DELETE /books/:id. Genre links cascade; copies keep existing with a null book.
func (ctl *BookController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_id")
	}
	res := ctl.DB.Where("book_id = ?", id).Delete(&model.BookModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete book %s: %v", id, res.Error)
		return ctl.I18n.DBError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return ctl.I18n.NewError(c, fiber.StatusNotFound, "msg.not_found")
	}
	return helper.JsonDeleted(c, ctl.I18n.TC(c, "msg.book.deleted"), fiber.Map{"book_id": id})
}

func (ctl *BookController) bind(c *fiber.Ctx) (*dto.BookRequest, error) {
	var req dto.BookRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_payload")
	}
	req.Normalize()
	if errs := ctl.I18n.ValidateStruct(ctl.I18n.LocaleOf(c), &req); errs != nil {
		return nil, ctl.I18n.InvalidError(c, errs)
	}
	return &req, nil
}

// ensureGenres rejects ids that do not name an existing genre.
func (ctl *BookController) ensureGenres(c *fiber.Ctx, tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var found []uuid.UUID
	if err := tx.Model(&genreModel.GenreModel{}).
		Where("genre_id IN ?", ids).
		Pluck("genre_id", &found).Error; err != nil {
		return ctl.I18n.WrapSaveError(c, err)
	}

	missing := MissingIDs(ids, found)
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for _, id := range missing {
		names = append(names, id.String())
	}
	var fe helper.FieldErrors
	fe.Add("genre_ids", "msg.book.unknown_genres", strings.Join(names, ", "))
	return ctl.I18n.WrapSaveError(c, fe)
}

func (ctl *BookController) replaceGenres(c *fiber.Ctx, tx *gorm.DB, m *model.BookModel, ids []uuid.UUID) error {
	if err := tx.Where("book_genre_book_id = ?", m.BookID).Delete(&model.BookGenreModel{}).Error; err != nil {
		return ctl.I18n.WrapSaveError(c, err)
	}
	m.SetGenres(ids)
	if len(m.BookGenres) == 0 {
		return nil
	}
	if err := tx.Create(&m.BookGenres).Error; err != nil {
		return ctl.I18n.WrapSaveError(c, err)
	}
	return nil
}

// MissingIDs returns the ids of want absent from have, in want order.
func MissingIDs(want, have []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(have))
	for _, id := range have {
		seen[id] = struct{}{}
	}
	var out []uuid.UUID
	for _, id := range want {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
			seen[id] = struct{}{}
		}
	}
	return out
}

func (ctl *BookController) find(c *fiber.Ctx, db *gorm.DB) (*model.BookModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_id")
	}
	return ctl.load(c, db, id)
}

// load fetches a book with author and genres. Failures come back as *fiber.Error.
func (ctl *BookController) load(c *fiber.Ctx, db *gorm.DB, id uuid.UUID) (*model.BookModel, error) {
	var m model.BookModel
	if err := model.WithGenres(db).Preload("Author").First(&m, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ctl.I18n.NewError(c, fiber.StatusNotFound, "msg.not_found")
		}
		log.Printf("[ERROR] load book %s: %v", id, err)
		return nil, ctl.I18n.NewError(c, fiber.StatusInternalServerError, "msg.db.error")
	}
	return &m, nil
}
