package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const pqUniqueViolation = pq.ErrorCode("23505")

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}
