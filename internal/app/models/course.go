package models

import (
	"fmt"
	"maps"
	"slices"

	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/validation"
)

// CourseParams holds the caller-supplied definition of a course
type CourseParams struct {
	Code          string `validate:"required"`
	Title         string
	Credits       int `validate:"gt=0"`
	Capacity      int `validate:"gt=0"`
	Prerequisites []string
}

// Course is a capacity- and prerequisite-gated course offered by a department
type Course struct {
	code              string
	title             string
	credits           int
	capacity          int
	prerequisites     []string
	enrolledIDs       map[string]struct{}
	assignedFacultyID string
}

// NewCourse validates params and creates a course with an empty roster
func NewCourse(params CourseParams) (*Course, error) {
	if err := validation.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidCourse, err)
	}
	c := &Course{
		code:        params.Code,
		title:       params.Title,
		credits:     params.Credits,
		capacity:    params.Capacity,
		enrolledIDs: make(map[string]struct{}),
	}
	for _, code := range params.Prerequisites {
		c.AddPrerequisite(code)
	}
	return c, nil
}

func (c *Course) Code() string  { return c.code }
func (c *Course) Title() string { return c.title }
func (c *Course) Credits() int  { return c.credits }
func (c *Course) Capacity() int { return c.capacity }

// Prerequisites returns the prerequisite codes in the order they were added
func (c *Course) Prerequisites() []string {
	return slices.Clone(c.prerequisites)
}

// AddPrerequisite appends code unless it is already a prerequisite
func (c *Course) AddPrerequisite(code string) {
	if !slices.Contains(c.prerequisites, code) {
		c.prerequisites = append(c.prerequisites, code)
	}
}

// EnrolledIDs returns the sorted IDs of enrolled students
func (c *Course) EnrolledIDs() []string {
	return slices.Sorted(maps.Keys(c.enrolledIDs))
}

// EnrolledCount returns the roster size
func (c *Course) EnrolledCount() int {
	return len(c.enrolledIDs)
}

// IsEnrolled reports whether studentID is on the roster
func (c *Course) IsEnrolled(studentID string) bool {
	_, ok := c.enrolledIDs[studentID]
	return ok
}

// AssignedFacultyID returns the assigned faculty member, if any
func (c *Course) AssignedFacultyID() (string, bool) {
	return c.assignedFacultyID, c.assignedFacultyID != ""
}

// AssignFaculty records facultyID as the course's instructor
func (c *Course) AssignFaculty(facultyID string) {
	c.assignedFacultyID = facultyID
}

// MissingPrerequisites returns the prerequisites student has not completed
func (c *Course) MissingPrerequisites(student *Student) []string {
	completed := student.CompletedCourses()
	var missing []string
	for _, code := range c.prerequisites {
		if !completed[code] {
			missing = append(missing, code)
		}
	}
	return missing
}

// CanEnroll reports whether a seat is free and every prerequisite is completed
func (c *Course) CanEnroll(student *Student) bool {
	return len(c.enrolledIDs) < c.capacity && len(c.MissingPrerequisites(student)) == 0
}

// Enroll puts student on the roster and into their record for semester.
// Either both sides change or neither does.
func (c *Course) Enroll(student *Student, semester string) error {
	if len(c.enrolledIDs) >= c.capacity {
		return apperrors.NewCustomError(
			apperrors.ErrCourseFull,
			fmt.Sprintf("cannot enroll %s in %s: %d of %d seats taken", student.ID(), c.code, len(c.enrolledIDs), c.capacity),
		).WithDetails(map[string]interface{}{"capacity": c.capacity})
	}
	if missing := c.MissingPrerequisites(student); len(missing) > 0 {
		return apperrors.NewCustomError(
			apperrors.ErrPrerequisiteUnmet,
			fmt.Sprintf("cannot enroll %s in %s: missing prerequisites %v", student.ID(), c.code, missing),
		).WithDetails(map[string]interface{}{"missing": missing})
	}

	_, alreadyOnRoster := c.enrolledIDs[student.ID()]
	c.enrolledIDs[student.ID()] = struct{}{}

	if err := student.EnrollCourse(c, semester); err != nil {
		if !alreadyOnRoster {
			delete(c.enrolledIDs, student.ID())
		}
		return err
	}
	return nil
}

// Drop removes student from the roster and from their semester enrollments.
// The roster is not per semester, so the seat is freed whichever semester is
// named. Dropping a student who is not enrolled is a no-op.
func (c *Course) Drop(student *Student, semester string) {
	delete(c.enrolledIDs, student.ID())
	student.DropCourse(c.code, semester)
}
