package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	p := NormalizePage(0, 0)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset())

	p = NormalizePage(3, 25)
	assert.Equal(t, 50, p.Offset())

	p = NormalizePage(-1, 5000)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 100, p.Limit)
}

func TestNewIDIsUniqueHex(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 24)
	assert.NotEqual(t, a, b)
}

func TestIsDuplicate(t *testing.T) {
	err := &DuplicateKeyError{Field: "lorryReceiptNumber"}
	assert.True(t, IsDuplicate(err))
	assert.True(t, IsDuplicate(fmt.Errorf("save failed: %w", err)))
	assert.False(t, IsDuplicate(ErrNotFound))
	assert.Contains(t, err.Error(), "lorryReceiptNumber")
}
