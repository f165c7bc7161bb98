package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"locallibrary_backend/internals/features/catalog/authors/model"
	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/dbtime"
)

// =======================
// Request DTO
// =======================

// AuthorRequest is used for both create and full update (PUT).
// Dates are calendar dates in YYYY-MM-DD; empty or null clears them.
type AuthorRequest struct {
	AuthorFirstName   string  `json:"author_first_name"              validate:"required,max=100"`
	AuthorLastName    string  `json:"author_last_name"               validate:"required,max=100"`
	AuthorDateOfBirth *string `json:"author_date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AuthorDateOfDeath *string `json:"author_date_of_death,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *AuthorRequest) Normalize() {
	r.AuthorFirstName = helper.CleanText(r.AuthorFirstName)
	r.AuthorLastName = helper.CleanText(r.AuthorLastName)
	r.AuthorDateOfBirth = trimPtr(r.AuthorDateOfBirth)
	r.AuthorDateOfDeath = trimPtr(r.AuthorDateOfDeath)
}

func (r *AuthorRequest) ToModel() (model.AuthorModel, error) {
	var m model.AuthorModel
	if err := r.ApplyToModel(&m); err != nil {
		return model.AuthorModel{}, err
	}
	return m, nil
}

// ApplyToModel copies every field; parse failures come back as helper.FieldErrors.
func (r *AuthorRequest) ApplyToModel(m *model.AuthorModel) error {
	var errs helper.FieldErrors
	dob, ok := parseOptionalDate(r.AuthorDateOfBirth)
	if !ok {
		errs.Add("author_date_of_birth", "date.invalid")
	}
	dod, ok := parseOptionalDate(r.AuthorDateOfDeath)
	if !ok {
		errs.Add("author_date_of_death", "date.invalid")
	}
	if err := errs.OrNil(); err != nil {
		return err
	}

	m.AuthorFirstName = r.AuthorFirstName
	m.AuthorLastName = r.AuthorLastName
	m.AuthorDateOfBirth = dob
	m.AuthorDateOfDeath = dod
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseOptionalDate(s *string) (*datatypes.Date, bool) {
	if s == nil {
		return nil, true
	}
	t, err := dbtime.ParseDate(*s)
	if err != nil {
		return nil, false
	}
	d := dbtime.ToDate(t)
	return &d, true
}

// =======================
// Response DTO
// =======================

type AuthorBookItem struct {
	BookID    uuid.UUID `json:"book_id"`
	BookTitle string    `json:"book_title"`
	URL       string    `json:"url,omitempty"`
}

type AuthorResponse struct {
	AuthorID          uuid.UUID `json:"author_id"`
	AuthorFirstName   string    `json:"author_first_name"`
	AuthorLastName    string    `json:"author_last_name"`
	AuthorDateOfBirth *string   `json:"author_date_of_birth"`
	AuthorDateOfDeath *string   `json:"author_date_of_death"`
	AuthorCreatedAt   time.Time `json:"author_created_at"`
	AuthorUpdatedAt   time.Time `json:"author_updated_at"`

	Display string           `json:"display"`
	URL     string           `json:"url,omitempty"`
	Books   []AuthorBookItem `json:"books,omitempty"`
}

func FromModel(m model.AuthorModel) AuthorResponse {
	return AuthorResponse{
		AuthorID:          m.AuthorID,
		AuthorFirstName:   m.AuthorFirstName,
		AuthorLastName:    m.AuthorLastName,
		AuthorDateOfBirth: dbtime.FormatDatePtr(m.AuthorDateOfBirth),
		AuthorDateOfDeath: dbtime.FormatDatePtr(m.AuthorDateOfDeath),
		AuthorCreatedAt:   m.AuthorCreatedAt,
		AuthorUpdatedAt:   m.AuthorUpdatedAt,
		Display:           m.String(),
	}
}

func FromModels(list []model.AuthorModel) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
