package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	bookModel "locallibrary_backend/internals/features/catalog/books/model"
	"locallibrary_backend/internals/helpers/dbtime"
)

const BookInstanceImprintMaxLen = 200

/* =========================
   Loan status
   ========================= */

type LoanStatus string

const (
	StatusMaintenance LoanStatus = "m"
	StatusOnLoan      LoanStatus = "o"
	StatusAvailable   LoanStatus = "a"
	StatusReserved    LoanStatus = "r"
)

// LoanStatuses is the enumeration in display order.
var LoanStatuses = []LoanStatus{StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved}

func (s LoanStatus) Label() string {
	switch s {
	case StatusMaintenance:
		return "Maintenance"
	case StatusOnLoan:
		return "On loan"
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	default:
		return string(s)
	}
}

func (s LoanStatus) Valid() bool {
	for _, v := range LoanStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseLoanStatus maps a code to a status; blank means the default.
func ParseLoanStatus(raw string) (LoanStatus, bool) {
	if raw == "" {
		return StatusMaintenance, true
	}
	s := LoanStatus(raw)
	return s, s.Valid()
}

/* =========================
   Permissions
   ========================= */

const PermCanMarkReturned = "can_mark_returned"

type PermissionSpec struct {
	Codename    string
	Name        string
	ContentType string
}

var Permissions = []PermissionSpec{
	{Codename: PermCanMarkReturned, Name: "Set book as returned", ContentType: "bookinstance"},
}

/* =========================
   Model
   ========================= */

// DefaultOrder lists undated copies first, then by due date.
const DefaultOrder = "book_instance_due_back ASC NULLS FIRST, book_instance_id ASC"

// OrderDefault is the scope every copy listing goes through.
func OrderDefault(db *gorm.DB) *gorm.DB {
	return db.Order(DefaultOrder)
}

type BookInstanceModel struct {
	BookInstanceID         uuid.UUID       `gorm:"column:book_instance_id;type:uuid;primaryKey" json:"book_instance_id"`
	BookInstanceBookID     *uuid.UUID      `gorm:"column:book_instance_book_id;type:uuid;index:idx_book_instances_book" json:"book_instance_book_id,omitempty"`
	BookInstanceImprint    string          `gorm:"column:book_instance_imprint;type:varchar(200);not null" json:"book_instance_imprint"`
	BookInstanceDueBack    *datatypes.Date `gorm:"column:book_instance_due_back;type:date;index:idx_book_instances_due_back" json:"book_instance_due_back,omitempty"`
	BookInstanceStatus     LoanStatus      `gorm:"column:book_instance_status;type:char(1);not null;default:'m';check:book_instance_status IN ('m','o','a','r')" json:"book_instance_status"`
	BookInstanceBorrowerID *uuid.UUID      `gorm:"column:book_instance_borrower_id;type:uuid;index:idx_book_instances_borrower" json:"book_instance_borrower_id,omitempty"`

	BookInstanceCreatedAt time.Time `gorm:"column:book_instance_created_at;type:timestamptz;not null;autoCreateTime" json:"book_instance_created_at"`
	BookInstanceUpdatedAt time.Time `gorm:"column:book_instance_updated_at;type:timestamptz;not null;autoUpdateTime" json:"book_instance_updated_at"`

	Book *bookModel.BookModel `gorm:"foreignKey:BookInstanceBookID;references:BookID" json:"-"`
}

func (BookInstanceModel) TableName() string { return "book_instances" }

// BeforeCreate always assigns a fresh id; ids are never taken from callers.
func (bi *BookInstanceModel) BeforeCreate(tx *gorm.DB) error {
	bi.BookInstanceID = uuid.New()
	return nil
}

func (bi *BookInstanceModel) BeforeSave(tx *gorm.DB) error {
	status, ok := ParseLoanStatus(string(bi.BookInstanceStatus))
	if !ok {
		return fmt.Errorf("invalid loan status %q", bi.BookInstanceStatus)
	}
	bi.BookInstanceStatus = status
	return nil
}

func (bi BookInstanceModel) IsOverdue() bool {
	return bi.IsOverdueOn(dbtime.Today())
}

func (bi BookInstanceModel) IsOverdueOn(today time.Time) bool {
	due := dbtime.FromDate(bi.BookInstanceDueBack)
	return due != nil && due.Before(dbtime.DateOf(today))
}

func (bi BookInstanceModel) String() string {
	title := ""
	if bi.Book != nil {
		title = bi.Book.BookTitle
	}
	dueBack := "No due date"
	if s := dbtime.FormatDatePtr(bi.BookInstanceDueBack); s != nil {
		dueBack = *s
	}
	return fmt.Sprintf("%s (ID: %s) - Status: %s, Due back: %s",
		title, bi.BookInstanceID, bi.BookInstanceStatus.Label(), dueBack)
}
