package repository

import (
	"errors"

	"github.com/lib/pq"
)

// pqDuplicate maps a Postgres unique violation to the field named by the
// constraint's table.
func pqDuplicate(err error, field string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return &DuplicateKeyError{Field: field}
	}
	return err
}

// like wraps a substring filter for ILIKE matching.
func like(value string) string {
	return "%" + value + "%"
}
