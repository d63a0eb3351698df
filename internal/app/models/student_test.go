package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUndergraduate(t *testing.T, id string) *Student {
	t.Helper()
	s, err := NewUndergraduateStudent(PersonParams{ID: id, Name: "Student " + id, Email: id + "@uni.edu", Age: 20})
	require.NoError(t, err)
	return s
}

func TestStudent_CalculateGPA_NoEntries(t *testing.T) {
	s := newUndergraduate(t, "U100")
	require.NoError(t, s.Record().SetGPA(3.0))

	assert.Equal(t, 0.0, s.CalculateGPA(""))
	assert.Equal(t, 0.0, s.Record().GPA())
	assert.Equal(t, StatusProbation, s.AcademicStatus())
}

func TestStudent_CalculateGPA_WeightedByCredits(t *testing.T) {
	s := newUndergraduate(t, "U100")
	require.NoError(t, s.AddGrade("2025-Spring", "CS101", 3, GradeA))
	require.NoError(t, s.AddGrade("2025-Fall", "CS201", 3, GradeAMinus))

	assert.InDelta(t, 3.85, s.CalculateGPA(""), 1e-9)
	assert.InDelta(t, 3.85, s.Record().GPA(), 1e-9)
	assert.Equal(t, StatusDeansList, s.AcademicStatus())
}

func TestStudent_CalculateGPA_UnequalCredits(t *testing.T) {
	s := newUndergraduate(t, "U100")
	require.NoError(t, s.AddGrade("2025-Spring", "CS101", 4, GradeA))
	require.NoError(t, s.AddGrade("2025-Spring", "HIST100", 1, GradeF))

	// (4.0*4 + 0.0*1) / 5
	assert.InDelta(t, 3.2, s.CalculateGPA(""), 1e-9)
	assert.Equal(t, StatusGoodStanding, s.AcademicStatus())
}

func TestStudent_SemesterGPALeavesStoredCumulative(t *testing.T) {
	s := newUndergraduate(t, "U100")
	require.NoError(t, s.AddGrade("2025-Spring", "CS101", 3, GradeA))
	require.NoError(t, s.AddGrade("2025-Fall", "CS201", 3, GradeD))

	cumulative := s.CalculateGPA("")
	assert.InDelta(t, 2.5, cumulative, 1e-9)

	assert.InDelta(t, 1.0, s.CalculateGPA("2025-Fall"), 1e-9)
	assert.InDelta(t, 4.0, s.CalculateGPA("2025-Spring"), 1e-9)
	assert.Equal(t, 0.0, s.CalculateGPA("2030-Spring"))

	assert.InDelta(t, 2.5, s.Record().GPA(), 1e-9)
	assert.Equal(t, StatusGoodStanding, s.AcademicStatus())
}

func TestStudent_AcademicStatusUsesStoredGPA(t *testing.T) {
	s := newUndergraduate(t, "U100")

	for gpa, want := range map[float64]AcademicStatus{
		3.85: StatusDeansList,
		2.5:  StatusGoodStanding,
		1.0:  StatusProbation,
	} {
		require.NoError(t, s.Record().SetGPA(gpa))
		assert.Equal(t, want, s.AcademicStatus())
	}
}

func TestStudent_Variants(t *testing.T) {
	grad, err := NewGraduateStudent(PersonParams{ID: "G200", Name: "Bob", Age: 25})
	require.NoError(t, err)

	assert.Equal(t, RoleGraduateStudent, grad.Role())
	assert.Equal(t, "Complete advanced coursework, research, and thesis/dissertation.", grad.Responsibilities())
	assert.Equal(t, "GraduateStudent(id=G200, name=Bob, age=25)", grad.String())
	assert.Equal(t, DefaultEnrollmentLimit, grad.Record().EnrollmentLimit())

	_, err = NewStudent(PersonParams{ID: "X"}, RoleProfessor)
	assert.Error(t, err)
}
