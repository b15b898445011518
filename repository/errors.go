package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist or belongs to another
// user. Handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// DuplicateKeyError reports a unique-constraint violation on a named field.
// Handlers map it to 409.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

// IsDuplicate reports whether err is a duplicate-key violation.
func IsDuplicate(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}
