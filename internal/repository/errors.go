package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

// pgCode extracts the SQLSTATE from a lib/pq error, or "" for anything else.
func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}
