package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Postgres SQLSTATE classes surfaced to clients.
const (
	PGForeignKeyViolation = "23503"
	PGUniqueViolation     = "23505"
	PGCheckViolation      = "23514"
)

// PGErrorCode extracts the SQLSTATE from a pgx or lib/pq error. Empty when err is neither.
func PGErrorCode(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// MapPGError returns the HTTP status and message key for a database error.
func MapPGError(err error) (int, string) {
	switch PGErrorCode(err) {
	case PGForeignKeyViolation:
		return http.StatusBadRequest, "msg.db.fk_violation"
	case PGUniqueViolation:
		return http.StatusConflict, "msg.db.unique_violation"
	case PGCheckViolation:
		return http.StatusBadRequest, "msg.db.check_violation"
	default:
		return http.StatusInternalServerError, "msg.db.error"
	}
}
