package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityKind names a department operation that changed state
type ActivityKind string

const (
	ActivityFacultyAssigned ActivityKind = "faculty_assigned"
	ActivityEnrolled        ActivityKind = "enrolled"
	ActivityDropped         ActivityKind = "dropped"
	ActivityGradeRecorded   ActivityKind = "grade_recorded"
)

// Activity is one entry of a department's activity log
type Activity struct {
	ID         uuid.UUID    `json:"id" yaml:"id"`
	Kind       ActivityKind `json:"kind" yaml:"kind"`
	StudentID  string       `json:"studentId,omitempty" yaml:"student_id,omitempty"`
	FacultyID  string       `json:"facultyId,omitempty" yaml:"faculty_id,omitempty"`
	CourseCode string       `json:"courseCode" yaml:"course_code"`
	Semester   string       `json:"semester,omitempty" yaml:"semester,omitempty"`
	Grade      LetterGrade  `json:"grade,omitempty" yaml:"grade,omitempty"`
	At         time.Time    `json:"at" yaml:"at"`
}
