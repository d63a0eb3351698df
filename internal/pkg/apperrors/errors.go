package apperrors

import (
	"errors"
	"fmt"
)

// Taxonomy roots. Every error returned by the records packages matches one of
// these through errors.Is.
var (
	ErrInvalidArgument         = errors.New("invalid argument")
	ErrNotFound                = errors.New("not found")
	ErrAlreadyExists           = errors.New("already exists")
	ErrEnrollmentRejected      = errors.New("enrollment rejected")
	ErrEnrollmentLimitExceeded = errors.New("enrollment limit exceeded")
)

// Validation errors
var (
	ErrInvalidGrade  = fmt.Errorf("%w: unrecognized letter grade", ErrInvalidArgument)
	ErrGPAOutOfRange = fmt.Errorf("%w: GPA must be between 0.0 and 4.0", ErrInvalidArgument)
	ErrInvalidLimit  = fmt.Errorf("%w: enrollment limit must be at least 1", ErrInvalidArgument)
	ErrInvalidCourse = fmt.Errorf("%w: invalid course", ErrInvalidArgument)
	ErrInvalidPerson = fmt.Errorf("%w: invalid person", ErrInvalidArgument)
)

// Lookup errors
var (
	ErrStudentNotFound = fmt.Errorf("student %w", ErrNotFound)
	ErrFacultyNotFound = fmt.Errorf("faculty %w", ErrNotFound)
	ErrCourseNotFound  = fmt.Errorf("course %w", ErrNotFound)
)

// Registration errors
var (
	ErrStudentAlreadyExists = fmt.Errorf("student %w", ErrAlreadyExists)
	ErrFacultyAlreadyExists = fmt.Errorf("faculty %w", ErrAlreadyExists)
	ErrCourseAlreadyExists  = fmt.Errorf("course %w", ErrAlreadyExists)
)

// Enrollment errors
var (
	ErrCourseFull        = fmt.Errorf("%w: course is at capacity", ErrEnrollmentRejected)
	ErrPrerequisiteUnmet = fmt.Errorf("%w: prerequisites not completed", ErrEnrollmentRejected)
)

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError carries an underlying taxonomy error plus context for the caller
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Code returns the stable error code for err, or an empty string when err is
// outside the taxonomy.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "INVALID_ARGUMENT"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrAlreadyExists):
		return "ALREADY_EXISTS"
	case errors.Is(err, ErrEnrollmentRejected):
		return "CAPACITY_OR_PREREQUISITE_VIOLATION"
	case errors.Is(err, ErrEnrollmentLimitExceeded):
		return "PERSONAL_LIMIT_EXCEEDED"
	default:
		return ""
	}
}
