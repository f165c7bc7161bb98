package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"locallibrary_backend/internals/features/catalog/book_instances/model"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/dbtime"
)

// =======================
// Request DTO
// =======================

// BookInstanceRequest never carries an id; ids are generated on create.
type BookInstanceRequest struct {
	BookInstanceBookID     *uuid.UUID `json:"book_instance_book_id,omitempty"`
	BookInstanceImprint    string     `json:"book_instance_imprint"               validate:"required,max=200"`
	BookInstanceDueBack    *string    `json:"book_instance_due_back,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	BookInstanceStatus     string     `json:"book_instance_status"                validate:"omitempty,oneof=m o a r"`
	BookInstanceBorrowerID *uuid.UUID `json:"book_instance_borrower_id,omitempty"`
}

func (r *BookInstanceRequest) Normalize() {
	r.BookInstanceImprint = helper.CleanText(r.BookInstanceImprint)
	r.BookInstanceStatus = strings.ToLower(strings.TrimSpace(r.BookInstanceStatus))
	if r.BookInstanceDueBack != nil {
		v := strings.TrimSpace(*r.BookInstanceDueBack)
		if v == "" {
			r.BookInstanceDueBack = nil
		} else {
			r.BookInstanceDueBack = &v
		}
	}
	if r.BookInstanceBookID != nil && *r.BookInstanceBookID == uuid.Nil {
		r.BookInstanceBookID = nil
	}
	if r.BookInstanceBorrowerID != nil && *r.BookInstanceBorrowerID == uuid.Nil {
		r.BookInstanceBorrowerID = nil
	}
}

func (r *BookInstanceRequest) ToModel() (model.BookInstanceModel, error) {
	var m model.BookInstanceModel
	if err := r.ApplyToModel(&m); err != nil {
		return model.BookInstanceModel{}, err
	}
	return m, nil
}

// ApplyToModel copies every field except the id.
func (r *BookInstanceRequest) ApplyToModel(m *model.BookInstanceModel) error {
	var errs helper.FieldErrors

	status, ok := model.ParseLoanStatus(r.BookInstanceStatus)
	if !ok {
		errs.Add("book_instance_status", "msg.invalid_payload")
	}
	if r.BookInstanceDueBack != nil {
		t, err := dbtime.ParseDate(*r.BookInstanceDueBack)
		if err != nil {
			errs.Add("book_instance_due_back", "date.invalid")
		} else {
			d := dbtime.ToDate(t)
			m.BookInstanceDueBack = &d
		}
	} else {
		m.BookInstanceDueBack = nil
	}
	if err := errs.OrNil(); err != nil {
		return err
	}

	m.BookInstanceBookID = r.BookInstanceBookID
	m.BookInstanceImprint = r.BookInstanceImprint
	m.BookInstanceStatus = status
	m.BookInstanceBorrowerID = r.BookInstanceBorrowerID
	return nil
}

// RenewRequest sets a new due date for a copy on loan.
type RenewRequest struct {
	DueBack string `json:"due_back" validate:"required,datetime=2006-01-02"`
}

// MaxRenewWeeks bounds how far ahead a renewal may go.
const MaxRenewWeeks = 4

// ValidateOn checks the renewal window against the given day and returns the parsed date.
func (r *RenewRequest) ValidateOn(today time.Time) (time.Time, error) {
	var errs helper.FieldErrors
	due, err := dbtime.ParseDate(r.DueBack)
	if err != nil {
		errs.Add("due_back", "date.invalid")
		return time.Time{}, errs
	}
	today = dbtime.DateOf(today)
	if due.Before(today) {
		errs.Add("due_back", "book_instance.due_back.past")
	}
	if due.After(today.AddDate(0, 0, 7*MaxRenewWeeks)) {
		errs.Add("due_back", "book_instance.due_back.too_far", strconv.Itoa(MaxRenewWeeks))
	}
	return due, errs.OrNil()
}

// =======================
// Response DTO
// =======================

type BookInstanceResponse struct {
	BookInstanceID         uuid.UUID  `json:"book_instance_id"`
	BookInstanceBookID     *uuid.UUID `json:"book_instance_book_id"`
	BookInstanceImprint    string     `json:"book_instance_imprint"`
	BookInstanceDueBack    *string    `json:"book_instance_due_back"`
	BookInstanceStatus     string     `json:"book_instance_status"`
	BookInstanceBorrowerID *uuid.UUID `json:"book_instance_borrower_id"`
	BookInstanceCreatedAt  time.Time  `json:"book_instance_created_at"`
	BookInstanceUpdatedAt  time.Time  `json:"book_instance_updated_at"`

	StatusLabel string `json:"status_label"`
	IsOverdue   bool   `json:"is_overdue"`
	Display     string `json:"display"`
	BookTitle   string `json:"book_title,omitempty"`
}

// FromModel renders a copy; label translates a status code for the caller's locale.
func FromModel(m model.BookInstanceModel, label func(model.LoanStatus) string) BookInstanceResponse {
	if label == nil {
		label = model.LoanStatus.Label
	}
	resp := BookInstanceResponse{
		BookInstanceID:         m.BookInstanceID,
		BookInstanceBookID:     m.BookInstanceBookID,
		BookInstanceImprint:    m.BookInstanceImprint,
		BookInstanceDueBack:    dbtime.FormatDatePtr(m.BookInstanceDueBack),
		BookInstanceStatus:     string(m.BookInstanceStatus),
		BookInstanceBorrowerID: m.BookInstanceBorrowerID,
		BookInstanceCreatedAt:  m.BookInstanceCreatedAt,
		BookInstanceUpdatedAt:  m.BookInstanceUpdatedAt,
		StatusLabel:            label(m.BookInstanceStatus),
		IsOverdue:              m.IsOverdue(),
		Display:                m.String(),
	}
	if m.Book != nil {
		resp.BookTitle = m.Book.BookTitle
	}
	return resp
}

func FromModels(list []model.BookInstanceModel, label func(model.LoanStatus) string) []BookInstanceResponse {
	out := make([]BookInstanceResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it, label))
	}
	return out
}

// ListQuery filters the staff list.
type ListQuery struct {
	Status string `query:"status"  json:"status"  validate:"omitempty,oneof=m o a r"`
	BookID string `query:"book_id" json:"book_id" validate:"omitempty,uuid"`
}

// StatusLabeler adapts a translate func to a status label func.
func StatusLabeler(translate func(key string, params ...string) string) func(model.LoanStatus) string {
	return func(s model.LoanStatus) string {
		return translate("status." + string(s))
	}
}
