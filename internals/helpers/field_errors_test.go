package helper

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors_OrNil(t *testing.T) {
	var fe FieldErrors
	assert.NoError(t, fe.OrNil())

	fe.Add("date_of_death", "author.date_of_death.not_past")
	err := fe.OrNil()
	require.Error(t, err)
	assert.Equal(t, "validation failed: date_of_death: author.date_of_death.not_past", err.Error())
}

func TestFieldErrors_AsThroughWrapping(t *testing.T) {
	var fe FieldErrors
	fe.Add("date_of_birth", "author.date_of_birth.too_young")
	wrapped := fmt.Errorf("save author: %w", fe.OrNil())

	var got FieldErrors
	require.True(t, errors.As(wrapped, &got))
	assert.True(t, got.Has("date_of_birth"))
	assert.False(t, got.Has("date_of_death"))
}

func TestFieldErrors_Render(t *testing.T) {
	var fe FieldErrors
	fe.Add("due_back", "a")
	fe.Add("due_back", "b", "4")

	out := fe.Render(func(key string, params ...string) string {
		if len(params) > 0 {
			return key + ":" + params[0]
		}
		return key
	})

	assert.Equal(t, map[string][]string{"due_back": {"a", "b:4"}}, out)
}

func TestMapPGError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		key    string
	}{
		{"pgx fk", &pgconn.PgError{Code: PGForeignKeyViolation}, http.StatusBadRequest, "msg.db.fk_violation"},
		{"pgx unique", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: PGUniqueViolation}), http.StatusConflict, "msg.db.unique_violation"},
		{"pq unique", &pq.Error{Code: pq.ErrorCode(PGUniqueViolation)}, http.StatusConflict, "msg.db.unique_violation"},
		{"pq check", &pq.Error{Code: pq.ErrorCode(PGCheckViolation)}, http.StatusBadRequest, "msg.db.check_violation"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "msg.db.error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, key := MapPGError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.key, key)
		})
	}
}

func TestNewPagingAndBuildPagination(t *testing.T) {
	p := NewPaging(0, 0, 20, 100)
	assert.Equal(t, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}, p)

	p = NewPaging(3, 500, 20, 100)
	assert.Equal(t, 100, p.PerPage)
	assert.Equal(t, 200, p.Offset)

	meta := BuildPagination(45, NewPaging(2, 20, 20, 100))
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	empty := BuildPagination(0, NewPaging(1, 20, 20, 100))
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}
