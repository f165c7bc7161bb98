package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "locallibrary_backend/internals/helpers"
	"locallibrary_backend/internals/helpers/dbtime"
	"locallibrary_backend/internals/helpers/urls"
)

const (
	AuthorNameMaxLen = 100
	MinimumAuthorAge = 18
)

type AuthorModel struct {
	AuthorID          uuid.UUID       `gorm:"column:author_id;type:uuid;default:gen_random_uuid();primaryKey" json:"author_id"`
	AuthorFirstName   string          `gorm:"column:author_first_name;type:varchar(100);not null" json:"author_first_name"`
	AuthorLastName    string          `gorm:"column:author_last_name;type:varchar(100);not null;index:idx_authors_last_name" json:"author_last_name"`
	AuthorDateOfBirth *datatypes.Date `gorm:"column:author_date_of_birth;type:date" json:"author_date_of_birth,omitempty"`
	AuthorDateOfDeath *datatypes.Date `gorm:"column:author_date_of_death;type:date" json:"author_date_of_death,omitempty"`

	AuthorCreatedAt time.Time `gorm:"column:author_created_at;type:timestamptz;not null;autoCreateTime" json:"author_created_at"`
	AuthorUpdatedAt time.Time `gorm:"column:author_updated_at;type:timestamptz;not null;autoUpdateTime" json:"author_updated_at"`
}

func (AuthorModel) TableName() string { return "authors" }

func (a AuthorModel) String() string {
	return a.AuthorLastName + ", " + a.AuthorFirstName
}

func (a AuthorModel) AbsoluteURL(r urls.Reverser) (string, error) {
	return r.Reverse(urls.AuthorDetail, a.AuthorID.String())
}

// ValidateOn checks the date rules against the given calendar day.
// Each rule reports on its own field; both may fail together.
func (a *AuthorModel) ValidateOn(today time.Time) error {
	today = dbtime.DateOf(today)
	var errs helper.FieldErrors

	if dob := dbtime.FromDate(a.AuthorDateOfBirth); dob != nil {
		if today.Before(dob.AddDate(MinimumAuthorAge, 0, 0)) {
			errs.Add("date_of_birth", "author.date_of_birth.too_young")
		}
	}
	if dod := dbtime.FromDate(a.AuthorDateOfDeath); dod != nil {
		if !dod.Before(today) {
			errs.Add("date_of_death", "author.date_of_death.not_past")
		}
	}
	return errs.OrNil()
}

func (a *AuthorModel) Validate() error {
	return a.ValidateOn(dbtime.Today())
}

// BeforeSave runs the date rules on every create and save.
func (a *AuthorModel) BeforeSave(tx *gorm.DB) error {
	return a.Validate()
}
