package model

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	bookModel "locallibrary_backend/internals/features/catalog/books/model"
	"locallibrary_backend/internals/helpers/dbtime"
)

var today = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func due(t time.Time) *datatypes.Date {
	d := dbtime.ToDate(t)
	return &d
}

func TestIsOverdueOn(t *testing.T) {
	cases := []struct {
		name string
		due  *datatypes.Date
		want bool
	}{
		{"unset", nil, false},
		{"yesterday", due(today.AddDate(0, 0, -1)), true},
		{"today", due(today), false},
		{"tomorrow", due(today.AddDate(0, 0, 1)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bi := BookInstanceModel{BookInstanceDueBack: tc.due}
			assert.Equal(t, tc.want, bi.IsOverdueOn(today))
		})
	}
}

func TestIsOverdue_EvaluatedEachCall(t *testing.T) {
	bi := BookInstanceModel{BookInstanceDueBack: due(today)}

	assert.False(t, bi.IsOverdueOn(today))
	assert.True(t, bi.IsOverdueOn(today.AddDate(0, 0, 1)))
}

func TestString(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	bi := BookInstanceModel{
		BookInstanceID:     id,
		BookInstanceStatus: StatusOnLoan,
		Book:               &bookModel.BookModel{BookTitle: "Dune"},
	}

	assert.Equal(t, "Dune (ID: 123e4567-e89b-12d3-a456-426614174000) - Status: On loan, Due back: No due date", bi.String())

	bi.BookInstanceDueBack = due(time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	bi.BookInstanceStatus = StatusReserved
	assert.Equal(t, "Dune (ID: 123e4567-e89b-12d3-a456-426614174000) - Status: Reserved, Due back: 2024-04-02", bi.String())
}

func TestLoanStatus(t *testing.T) {
	labels := map[LoanStatus]string{
		StatusMaintenance: "Maintenance",
		StatusOnLoan:      "On loan",
		StatusAvailable:   "Available",
		StatusReserved:    "Reserved",
	}
	for s, label := range labels {
		assert.True(t, s.Valid())
		assert.Equal(t, label, s.Label())
	}
	assert.False(t, LoanStatus("x").Valid())

	s, ok := ParseLoanStatus("")
	assert.True(t, ok)
	assert.Equal(t, StatusMaintenance, s)

	_, ok = ParseLoanStatus("z")
	assert.False(t, ok)
}

func TestBeforeSave_DefaultsAndRejects(t *testing.T) {
	bi := BookInstanceModel{}
	require.NoError(t, bi.BeforeSave(nil))
	assert.Equal(t, StatusMaintenance, bi.BookInstanceStatus)

	bad := BookInstanceModel{BookInstanceStatus: "q"}
	assert.Error(t, bad.BeforeSave(nil))
}

func TestBeforeCreate_AlwaysGeneratesID(t *testing.T) {
	supplied := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	bi := BookInstanceModel{BookInstanceID: supplied}

	require.NoError(t, bi.BeforeCreate(nil))
	assert.NotEqual(t, supplied, bi.BookInstanceID)
	assert.NotEqual(t, uuid.Nil, bi.BookInstanceID)

	other := BookInstanceModel{}
	require.NoError(t, other.BeforeCreate(nil))
	assert.NotEqual(t, bi.BookInstanceID, other.BookInstanceID)
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=library dbname=library sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestOrderDefault_NullsFirstThenAscending(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []BookInstanceModel
		return tx.Model(&BookInstanceModel{}).
			Where("book_instance_status = ?", "o").
			Scopes(OrderDefault).
			Find(&rows)
	})

	assert.Contains(t, sql, `FROM "book_instances"`)
	assert.True(t, strings.HasSuffix(sql,
		"ORDER BY book_instance_due_back ASC NULLS FIRST, book_instance_id ASC"), sql)
}

func TestPermissions(t *testing.T) {
	require.Len(t, Permissions, 1)
	assert.Equal(t, "can_mark_returned", Permissions[0].Codename)
	assert.Equal(t, "Set book as returned", Permissions[0].Name)
}
