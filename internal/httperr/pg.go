package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsExclusionConflict detecta violação de constraint de horário no Postgres
// (índice único parcial ou exclusion constraint sobre o slot).
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation || pgErr.Code == pgExclusionViolation
	}
	return false
}
