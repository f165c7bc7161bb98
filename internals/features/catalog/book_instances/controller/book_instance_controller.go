package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/catalog/book_instances/dto"
	"locallibrary_backend/internals/features/catalog/book_instances/model"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/dbtime"
	"locallibrary_backend/internals/helpers/i18n"
)

type BookInstanceController struct {
	DB   *gorm.DB
	I18n *i18n.Catalog
}

func NewBookInstanceController(db *gorm.DB, cat *i18n.Catalog) *BookInstanceController {
	return &BookInstanceController{DB: db, I18n: cat}
}

func (ctl *BookInstanceController) labeler(c *fiber.Ctx) func(model.LoanStatus) string {
	return dto.StatusLabeler(func(key string, params ...string) string {
		return ctl.I18n.TC(c, key, params...)
	})
}

func (ctl *BookInstanceController) respondList(c *fiber.Ctx, q *gorm.DB, p helper.Paging) error {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}
	var rows []model.BookInstanceModel
	if err := q.Preload("Book").Scopes(model.OrderDefault).
		Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return ctl.I18n.DBError(c, err)
	}
	return helper.JsonList(c, ctl.I18n.TC(c, "msg.ok"), dto.FromModels(rows, ctl.labeler(c)), helper.BuildPagination(total, p))
}

// GET /book-instances/list?status=&book_id=
func (ctl *BookInstanceController) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_query")
	}
	if errs := ctl.I18n.ValidateStruct(ctl.I18n.LocaleOf(c), &q); errs != nil {
		return ctl.I18n.InvalidError(c, errs)
	}

	return ctl.respondList(c, filterList(ctl.DB, q), helper.ResolvePaging(c, 20, 100))
}

func filterList(db *gorm.DB, q dto.ListQuery) *gorm.DB {
	dbq := db.Model(&model.BookInstanceModel{})
	if q.Status != "" {
		dbq = dbq.Where("book_instance_status = ?", q.Status)
	}
	if q.BookID != "" {
		dbq = dbq.Where("book_instance_book_id = ?", q.BookID)
	}
	return dbq
}

// GET /book-instances/borrowed lists every copy on loan.
func (ctl *BookInstanceController) Borrowed(c *fiber.Ctx) error {
	dbq := ctl.DB.Model(&model.BookInstanceModel{}).
		Where("book_instance_status = ?", model.StatusOnLoan)
	return ctl.respondList(c, dbq, helper.ResolvePaging(c, 20, 100))
}

// GET /my-loans lists the caller's copies on loan.
func (ctl *BookInstanceController) MyLoans(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	dbq := ctl.DB.Model(&model.BookInstanceModel{}).
		Where("book_instance_borrower_id = ? AND book_instance_status = ?", userID, model.StatusOnLoan)
	return ctl.respondList(c, dbq, helper.ResolvePaging(c, 20, 100))
}

// GET /book-instances/:id
func (ctl *BookInstanceController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, ctl.I18n.TC(c, "msg.ok"), dto.FromModel(*m, ctl.labeler(c)))
}

// POST /book-instances. The id is always generated.
func (ctl *BookInstanceController) Create(c *fiber.Ctx) error {
	req, err := ctl.bind(c)
	if err != nil {
		return err
	}
	m, err := req.ToModel()
	if err != nil {
		return ctl.I18n.WrapSaveError(c, err)
	}
	if err := ctl.DB.Omit("Book").Create(&m).Error; err != nil {
		log.Printf("[ERROR] create book instance: %v", err)
		return ctl.I18n.WrapSaveError(c, err)
	}
	return ctl.respondOne(c, fiber.StatusCreated, "msg.book_instance.created", m.BookInstanceID)
}

// PUT /book-instances/:id. Any status may be set directly.
func (ctl *BookInstanceController) Update(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	req, err := ctl.bind(c)
	if err != nil {
		return err
	}
	if err := req.ApplyToModel(m); err != nil {
		return ctl.I18n.WrapSaveError(c, err)
	}
	m.Book = nil
	if err := ctl.DB.Omit("Book").Save(m).Error; err != nil {
		log.Printf("[ERROR] update book instance %s: %v", m.BookInstanceID, err)
		return ctl.I18n.WrapSaveError(c, err)
	}
	return ctl.respondOne(c, fiber.StatusOK, "msg.book_instance.updated", m.BookInstanceID)
}

// DELETE /book-instances/:id
func (ctl *BookInstanceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_id")
	}
	res := ctl.DB.Where("book_instance_id = ?", id).Delete(&model.BookInstanceModel{})
	if res.Error != nil {
		log.Printf("[ERROR] delete book instance %s: %v", id, res.Error)
		return ctl.I18n.DBError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return ctl.I18n.NewError(c, fiber.StatusNotFound, "msg.not_found")
	}
	return helper.JsonDeleted(c, ctl.I18n.TC(c, "msg.book_instance.deleted"), fiber.Map{"book_instance_id": id})
}

// POST /book-instances/:id/return marks the copy available and clears the loan.
func (ctl *BookInstanceController) MarkReturned(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}
	res := ctl.DB.Model(&model.BookInstanceModel{}).
		Where("book_instance_id = ?", m.BookInstanceID).
		Updates(map[string]interface{}{
			"book_instance_status":      model.StatusAvailable,
			"book_instance_borrower_id": nil,
			"book_instance_due_back":    nil,
		})
	if res.Error != nil {
		log.Printf("[ERROR] return book instance %s: %v", m.BookInstanceID, res.Error)
		return ctl.I18n.DBError(c, res.Error)
	}
	log.Printf("[INFO] book instance %s returned", m.BookInstanceID)
	return ctl.respondOne(c, fiber.StatusOK, "msg.book_instance.returned", m.BookInstanceID)
}

// POST /book-instances/:id/renew sets a new due date within the renewal window.
func (ctl *BookInstanceController) Renew(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return err
	}

	var req dto.RenewRequest
	if err := c.BodyParser(&req); err != nil {
		return ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_payload")
	}
	if errs := ctl.I18n.ValidateStruct(ctl.I18n.LocaleOf(c), &req); errs != nil {
		return ctl.I18n.InvalidError(c, errs)
	}
	due, err := req.ValidateOn(dbtime.Today())
	if err != nil {
		return ctl.I18n.WrapSaveError(c, err)
	}

	if err := ctl.DB.Model(&model.BookInstanceModel{}).
		Where("book_instance_id = ?", m.BookInstanceID).
		Update("book_instance_due_back", dbtime.ToDate(due)).Error; err != nil {
		log.Printf("[ERROR] renew book instance %s: %v", m.BookInstanceID, err)
		return ctl.I18n.DBError(c, err)
	}
	return ctl.respondOne(c, fiber.StatusOK, "msg.book_instance.renewed", m.BookInstanceID)
}

func (ctl *BookInstanceController) bind(c *fiber.Ctx) (*dto.BookInstanceRequest, error) {
	var req dto.BookInstanceRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_payload")
	}
	req.Normalize()
	if errs := ctl.I18n.ValidateStruct(ctl.I18n.LocaleOf(c), &req); errs != nil {
		return nil, ctl.I18n.InvalidError(c, errs)
	}
	return &req, nil
}

func (ctl *BookInstanceController) respondOne(c *fiber.Ctx, status int, key string, id uuid.UUID) error {
	m, err := ctl.load(c, id)
	if err != nil {
		return err
	}
	body := dto.FromModel(*m, ctl.labeler(c))
	if status == fiber.StatusCreated {
		return helper.JsonCreated(c, ctl.I18n.TC(c, key), body)
	}
	return helper.JsonUpdated(c, ctl.I18n.TC(c, key), body)
}

func (ctl *BookInstanceController) find(c *fiber.Ctx) (*model.BookInstanceModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, ctl.I18n.NewError(c, fiber.StatusBadRequest, "msg.invalid_id")
	}
	return ctl.load(c, id)
}

// load fetches a copy with its book. Failures come back as *fiber.Error.
func (ctl *BookInstanceController) load(c *fiber.Ctx, id uuid.UUID) (*model.BookInstanceModel, error) {
	var m model.BookInstanceModel
	if err := ctl.DB.Preload("Book").First(&m, "book_instance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ctl.I18n.NewError(c, fiber.StatusNotFound, "msg.not_found")
		}
		log.Printf("[ERROR] load book instance %s: %v", id, err)
		return nil, ctl.I18n.NewError(c, fiber.StatusInternalServerError, "msg.db.error")
	}
	return &m, nil
}
