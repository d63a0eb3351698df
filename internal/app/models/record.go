package models

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// DefaultEnrollmentLimit is the per-semester course cap of a new record
const DefaultEnrollmentLimit = 5

// StudentRecord keeps a student's grades, GPA and current enrollments.
// Every getter returns a copy; state changes only through the validating methods.
type StudentRecord struct {
	gpa                float64
	enrollmentLimit    int
	transcript         map[string][]GradeEntry
	currentEnrollments map[string]map[string]struct{}
}

// NewStudentRecord creates an empty record with the given per-semester limit
func NewStudentRecord(enrollmentLimit int) (*StudentRecord, error) {
	r := &StudentRecord{
		transcript:         make(map[string][]GradeEntry),
		currentEnrollments: make(map[string]map[string]struct{}),
	}
	if err := r.SetEnrollmentLimit(enrollmentLimit); err != nil {
		return nil, err
	}
	return r, nil
}

// GPA returns the stored GPA
func (r *StudentRecord) GPA() float64 {
	return r.gpa
}

// SetGPA stores value rounded to two decimals
func (r *StudentRecord) SetGPA(value float64) error {
	if math.IsNaN(value) || value < 0.0 || value > 4.0 {
		return fmt.Errorf("%w: got %v", apperrors.ErrGPAOutOfRange, value)
	}
	r.gpa = roundGPA(value)
	return nil
}

// EnrollmentLimit returns the per-semester course cap
func (r *StudentRecord) EnrollmentLimit() int {
	return r.enrollmentLimit
}

// SetEnrollmentLimit changes the per-semester course cap. Lowering it does not
// drop existing enrollments; it only blocks new ones.
func (r *StudentRecord) SetEnrollmentLimit(limit int) error {
	if limit < 1 {
		return fmt.Errorf("%w: got %d", apperrors.ErrInvalidLimit, limit)
	}
	r.enrollmentLimit = limit
	return nil
}

// AddGrade appends a transcript entry. Entries are never corrected or removed,
// so a repeated course in the same semester counts once per entry.
func (r *StudentRecord) AddGrade(semester, courseCode string, credits int, letter LetterGrade) error {
	if !letter.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidGrade, letter)
	}
	if credits <= 0 {
		return fmt.Errorf("%w: credits must be positive, got %d", apperrors.ErrInvalidArgument, credits)
	}
	r.transcript[semester] = append(r.transcript[semester], GradeEntry{
		CourseCode: courseCode,
		Credits:    credits,
		Letter:     letter,
	})
	return nil
}

// Transcript returns a copy of every semester's entries
func (r *StudentRecord) Transcript() map[string][]GradeEntry {
	out := make(map[string][]GradeEntry, len(r.transcript))
	for semester, entries := range r.transcript {
		out[semester] = slices.Clone(entries)
	}
	return out
}

// SemesterEntries returns a copy of one semester's entries
func (r *StudentRecord) SemesterEntries(semester string) []GradeEntry {
	return slices.Clone(r.transcript[semester])
}

// Semesters returns the graded semester labels in sorted order
func (r *StudentRecord) Semesters() []string {
	return slices.Sorted(maps.Keys(r.transcript))
}

// CompletedCourses returns every course code with at least one transcript
// entry. Any grade counts, F included.
func (r *StudentRecord) CompletedCourses() map[string]bool {
	completed := make(map[string]bool)
	for _, entries := range r.transcript {
		for _, e := range entries {
			completed[e.CourseCode] = true
		}
	}
	return completed
}

// Enroll adds courseCode to the semester's enrollments. A full semester
// rejects every enroll, including one for a course already held; below the
// limit re-adding an enrolled course is a no-op.
func (r *StudentRecord) Enroll(semester, courseCode string) error {
	current := r.currentEnrollments[semester]
	if len(current) >= r.enrollmentLimit {
		return fmt.Errorf("%w: limit of %d reached for %s", apperrors.ErrEnrollmentLimitExceeded, r.enrollmentLimit, semester)
	}
	if current == nil {
		current = make(map[string]struct{})
		r.currentEnrollments[semester] = current
	}
	current[courseCode] = struct{}{}
	return nil
}

// Drop removes courseCode from the semester's enrollments if present
func (r *StudentRecord) Drop(semester, courseCode string) {
	current, ok := r.currentEnrollments[semester]
	if !ok {
		return
	}
	delete(current, courseCode)
	if len(current) == 0 {
		delete(r.currentEnrollments, semester)
	}
}

// IsEnrolled reports whether courseCode is a current enrollment in semester
func (r *StudentRecord) IsEnrolled(semester, courseCode string) bool {
	_, ok := r.currentEnrollments[semester][courseCode]
	return ok
}

// CurrentEnrollments returns every semester's enrolled course codes, sorted
func (r *StudentRecord) CurrentEnrollments() map[string][]string {
	out := make(map[string][]string, len(r.currentEnrollments))
	for semester := range r.currentEnrollments {
		out[semester] = r.SemesterEnrollments(semester)
	}
	return out
}

// SemesterEnrollments returns the sorted course codes enrolled in semester
func (r *StudentRecord) SemesterEnrollments(semester string) []string {
	return slices.Sorted(maps.Keys(r.currentEnrollments[semester]))
}

func roundGPA(v float64) float64 {
	return math.Round(v*100) / 100
}
