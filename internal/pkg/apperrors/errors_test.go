package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		err  error
		root error
		code string
	}{
		{ErrInvalidGrade, ErrInvalidArgument, "INVALID_ARGUMENT"},
		{ErrGPAOutOfRange, ErrInvalidArgument, "INVALID_ARGUMENT"},
		{ErrInvalidLimit, ErrInvalidArgument, "INVALID_ARGUMENT"},
		{ErrCourseNotFound, ErrNotFound, "NOT_FOUND"},
		{ErrStudentAlreadyExists, ErrAlreadyExists, "ALREADY_EXISTS"},
		{ErrCourseFull, ErrEnrollmentRejected, "CAPACITY_OR_PREREQUISITE_VIOLATION"},
		{ErrPrerequisiteUnmet, ErrEnrollmentRejected, "CAPACITY_OR_PREREQUISITE_VIOLATION"},
		{ErrEnrollmentLimitExceeded, ErrEnrollmentLimitExceeded, "PERSONAL_LIMIT_EXCEEDED"},
	}

	for _, tt := range tests {
		wrapped := fmt.Errorf("%w: CS101", tt.err)
		assert.True(t, errors.Is(wrapped, tt.root), tt.err.Error())
		assert.Equal(t, tt.code, Code(wrapped), tt.err.Error())
	}

	assert.Empty(t, Code(errors.New("other")))
	assert.False(t, errors.Is(ErrCourseFull, ErrEnrollmentLimitExceeded))
}

func TestCustomError(t *testing.T) {
	err := NewCustomError(ErrPrerequisiteUnmet, "missing CS101").
		WithDetails(map[string]interface{}{"missing": []string{"CS101"}})

	assert.Equal(t, "missing CS101", err.Error())
	assert.True(t, errors.Is(err, ErrEnrollmentRejected))
	assert.Equal(t, "CAPACITY_OR_PREREQUISITE_VIOLATION", Code(err))

	assert.Equal(t, "unknown error", (&CustomError{}).Error())
	assert.True(t, Is(err, ErrNotFound, ErrPrerequisiteUnmet))
	assert.False(t, Is(err, ErrNotFound))
}
