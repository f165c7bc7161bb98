package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"locallibrary_backend/internals/features/catalog/book_instances/dto"
	"locallibrary_backend/internals/features/catalog/book_instances/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=library dbname=library sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestFilterList_OrderedNullsFirst(t *testing.T) {
	db := dryRunDB(t)
	bookID := "7b0d5b3c-5e0c-4c1e-9a57-1f0d2f8a6d11"

	cases := []struct {
		name  string
		query dto.ListQuery
		want  string
	}{
		{
			"no filter",
			dto.ListQuery{},
			`SELECT * FROM "book_instances" ORDER BY book_instance_due_back ASC NULLS FIRST, book_instance_id ASC`,
		},
		{
			"status",
			dto.ListQuery{Status: "o"},
			`SELECT * FROM "book_instances" WHERE book_instance_status = 'o' ORDER BY book_instance_due_back ASC NULLS FIRST, book_instance_id ASC`,
		},
		{
			"status and book",
			dto.ListQuery{Status: "a", BookID: bookID},
			`SELECT * FROM "book_instances" WHERE book_instance_status = 'a' AND book_instance_book_id = '` + bookID +
				`' ORDER BY book_instance_due_back ASC NULLS FIRST, book_instance_id ASC`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				var rows []model.BookInstanceModel
				return filterList(tx, tc.query).Scopes(model.OrderDefault).Find(&rows)
			})
			assert.Equal(t, tc.want, sql)
		})
	}
}
