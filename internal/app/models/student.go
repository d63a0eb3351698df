package models

import (
	"fmt"

	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// Student is an enrolled learner owning exactly one record
type Student struct {
	Profile
	record *StudentRecord
}

// NewStudent creates a student with one of the student roles and a record
// capped at DefaultEnrollmentLimit courses per semester
func NewStudent(params PersonParams, role RoleType) (*Student, error) {
	if !role.IsStudent() {
		return nil, fmt.Errorf("%w: %q is not a student role", apperrors.ErrInvalidPerson, role)
	}
	profile, err := newProfile(params, role)
	if err != nil {
		return nil, err
	}
	record, err := NewStudentRecord(DefaultEnrollmentLimit)
	if err != nil {
		return nil, err
	}
	return &Student{Profile: profile, record: record}, nil
}

// NewUndergraduateStudent creates an undergraduate
func NewUndergraduateStudent(params PersonParams) (*Student, error) {
	return NewStudent(params, RoleUndergraduateStudent)
}

// NewGraduateStudent creates a graduate student
func NewGraduateStudent(params PersonParams) (*Student, error) {
	return NewStudent(params, RoleGraduateStudent)
}

// Record returns the student's record
func (s *Student) Record() *StudentRecord {
	return s.record
}

// EnrollCourse applies the personal per-semester limit. Capacity and
// prerequisites are the course's concern.
func (s *Student) EnrollCourse(course *Course, semester string) error {
	return s.record.Enroll(semester, course.Code())
}

// DropCourse removes a current enrollment
func (s *Student) DropCourse(courseCode, semester string) {
	s.record.Drop(semester, courseCode)
}

// AddGrade appends a transcript entry
func (s *Student) AddGrade(semester, courseCode string, credits int, letter LetterGrade) error {
	return s.record.AddGrade(semester, courseCode, credits, letter)
}

// CompletedCourses returns the course codes usable as prerequisites
func (s *Student) CompletedCourses() map[string]bool {
	return s.record.CompletedCourses()
}

// CalculateGPA returns the credit-weighted GPA. With an empty semester it
// aggregates every semester and stores the result as the cumulative GPA.
// With a semester label it returns that semester's GPA and leaves the stored
// value untouched. No entries yields 0.0.
func (s *Student) CalculateGPA(semester string) float64 {
	var entries []GradeEntry
	if semester != "" {
		entries = s.record.SemesterEntries(semester)
	} else {
		for _, sem := range s.record.Semesters() {
			entries = append(entries, s.record.SemesterEntries(sem)...)
		}
	}

	gpa := weightedAverage(entries)
	if semester == "" {
		// weightedAverage stays within [0, 4] because AddGrade only admits
		// recognized letters and positive credits
		s.record.gpa = gpa
	}
	return gpa
}

// AcademicStatus classifies the stored cumulative GPA
func (s *Student) AcademicStatus() AcademicStatus {
	return ClassifyGPA(s.record.GPA())
}

func weightedAverage(entries []GradeEntry) float64 {
	var points float64
	var credits int
	for _, e := range entries {
		points += e.Letter.Points() * float64(e.Credits)
		credits += e.Credits
	}
	if credits == 0 {
		return 0.0
	}
	return roundGPA(points / float64(credits))
}
