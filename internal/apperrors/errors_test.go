package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("renaming: %w", NewNotFoundError("workspace ws-1 not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.Contains(t, err.Error(), "workspace ws-1 not found")
}

func TestSentinelsStayDistinct(t *testing.T) {
	kinds := []error{ErrUnauthenticated, ErrNotFound, ErrForbidden, ErrValidation, ErrDuplicate}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := NewAppError(500, "boom", nil)
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
