package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

func newCourse(t *testing.T, code string, capacity int, prereqs ...string) *Course {
	t.Helper()
	c, err := NewCourse(CourseParams{Code: code, Title: code, Credits: 3, Capacity: capacity, Prerequisites: prereqs})
	require.NoError(t, err)
	return c
}

func TestNewCourse_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params CourseParams
	}{
		{name: "zero credits", params: CourseParams{Code: "CS101", Credits: 0, Capacity: 10}},
		{name: "negative credits", params: CourseParams{Code: "CS101", Credits: -3, Capacity: 10}},
		{name: "zero capacity", params: CourseParams{Code: "CS101", Credits: 3, Capacity: 0}},
		{name: "missing code", params: CourseParams{Credits: 3, Capacity: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCourse(tt.params)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidCourse))
			assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
		})
	}
}

func TestCourse_PrerequisitesDeduplicated(t *testing.T) {
	c := newCourse(t, "CS301", 2, "CS201", "CS201")
	c.AddPrerequisite("CS101")
	c.AddPrerequisite("CS201")

	assert.Equal(t, []string{"CS201", "CS101"}, c.Prerequisites())
}

func TestCourse_EnrollMutatesBothSides(t *testing.T) {
	c := newCourse(t, "CS101", 2)
	s := newUndergraduate(t, "U100")

	require.True(t, c.CanEnroll(s))
	require.NoError(t, c.Enroll(s, "2025-Spring"))

	assert.Equal(t, []string{"U100"}, c.EnrolledIDs())
	assert.True(t, s.Record().IsEnrolled("2025-Spring", "CS101"))
}

func TestCourse_EnrollRejectsWhenFull(t *testing.T) {
	c := newCourse(t, "CS101", 1)
	first := newUndergraduate(t, "U100")
	second := newUndergraduate(t, "U101")

	require.NoError(t, c.Enroll(first, "2025-Spring"))
	assert.False(t, c.CanEnroll(second))

	err := c.Enroll(second, "2025-Spring")
	assert.True(t, errors.Is(err, apperrors.ErrCourseFull))
	assert.True(t, errors.Is(err, apperrors.ErrEnrollmentRejected))
	assert.Equal(t, 1, c.EnrolledCount())
	assert.Empty(t, second.Record().SemesterEnrollments("2025-Spring"))
}

func TestCourse_EnrollRejectsMissingPrerequisite(t *testing.T) {
	c := newCourse(t, "CS201", 2, "CS101")
	s := newUndergraduate(t, "U100")

	err := c.Enroll(s, "2025-Fall")
	require.True(t, errors.Is(err, apperrors.ErrPrerequisiteUnmet))
	assert.True(t, errors.Is(err, apperrors.ErrEnrollmentRejected))

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, []string{"CS101"}, custom.Details["missing"])

	assert.Zero(t, c.EnrolledCount())
	assert.Empty(t, s.Record().CurrentEnrollments())

	require.NoError(t, s.AddGrade("2025-Spring", "CS101", 3, GradeF))
	assert.NoError(t, c.Enroll(s, "2025-Fall"))
}

func TestCourse_EnrollRollsBackWhenPersonalLimitHit(t *testing.T) {
	s := newUndergraduate(t, "U100")
	require.NoError(t, s.Record().SetEnrollmentLimit(1))

	first := newCourse(t, "CS101", 5)
	second := newCourse(t, "MATH101", 5)

	require.NoError(t, first.Enroll(s, "2025-Spring"))

	err := second.Enroll(s, "2025-Spring")
	assert.True(t, errors.Is(err, apperrors.ErrEnrollmentLimitExceeded))
	assert.False(t, second.IsEnrolled("U100"))
	assert.Zero(t, second.EnrolledCount())
	assert.Equal(t, []string{"CS101"}, s.Record().SemesterEnrollments("2025-Spring"))
}

func TestCourse_RollbackKeepsExistingRosterEntry(t *testing.T) {
	s := newUndergraduate(t, "U100")
	c := newCourse(t, "CS101", 5)
	require.NoError(t, c.Enroll(s, "2025-Spring"))

	require.NoError(t, s.Record().SetEnrollmentLimit(1))
	require.NoError(t, s.Record().Enroll("2025-Fall", "CS102"))

	// the roster already holds U100 from spring; a failed fall attempt must not remove it
	err := c.Enroll(s, "2025-Fall")
	assert.True(t, errors.Is(err, apperrors.ErrEnrollmentLimitExceeded))
	assert.True(t, c.IsEnrolled("U100"))
}

func TestCourse_RosterNeverExceedsCapacity(t *testing.T) {
	c := newCourse(t, "CS101", 3)
	var students []*Student
	for i := 0; i < 6; i++ {
		students = append(students, newUndergraduate(t, fmt.Sprintf("U%03d", i)))
	}

	for round := 0; round < 3; round++ {
		for i, s := range students {
			_ = c.Enroll(s, "2025-Spring")
			assert.LessOrEqual(t, c.EnrolledCount(), c.Capacity())
			if (i+round)%2 == 0 {
				c.Drop(s, "2025-Spring")
				assert.LessOrEqual(t, c.EnrolledCount(), c.Capacity())
			}
		}
	}

	for _, s := range students {
		assert.Equal(t, c.IsEnrolled(s.ID()), s.Record().IsEnrolled("2025-Spring", "CS101"), s.ID())
	}
}

func TestCourse_DropNotEnrolledIsNoop(t *testing.T) {
	c := newCourse(t, "CS101", 2)
	s := newUndergraduate(t, "U100")

	c.Drop(s, "2025-Spring")
	assert.Zero(t, c.EnrolledCount())

	require.NoError(t, c.Enroll(s, "2025-Spring"))
	c.Drop(s, "2025-Spring")
	assert.False(t, c.IsEnrolled("U100"))
	assert.False(t, s.Record().IsEnrolled("2025-Spring", "CS101"))
}

func TestCourse_AssignFaculty(t *testing.T) {
	c := newCourse(t, "CS101", 2)
	_, ok := c.AssignedFacultyID()
	assert.False(t, ok)

	c.AssignFaculty("F003")
	id, ok := c.AssignedFacultyID()
	assert.True(t, ok)
	assert.Equal(t, "F003", id)
}

func TestCourse_DropClearsRosterAcrossSemesters(t *testing.T) {
	s := newUndergraduate(t, "U100")
	c := newCourse(t, "CS101", 5)
	require.NoError(t, c.Enroll(s, "2025-Spring"))

	// the roster has no semester dimension
	c.Drop(s, "2025-Fall")
	assert.False(t, c.IsEnrolled("U100"))
	assert.True(t, s.Record().IsEnrolled("2025-Spring", "CS101"))
}
