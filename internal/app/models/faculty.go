package models

import (
	"fmt"
	"slices"

	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// WorkloadPolicy turns a count of assigned courses into a workload score
type WorkloadPolicy func(assigned int) int

var workloadPolicies = map[RoleType]WorkloadPolicy{
	RoleFaculty: func(n int) int { return n },
	// research load means fewer sections, but never less than one unit
	RoleProfessor: func(n int) int { return max(1, 2*n) },
	RoleLecturer:  func(n int) int { return 3 * n },
	RoleTA:        func(n int) int { return n },
}

// Faculty is a teaching member of a department
type Faculty struct {
	Profile
	assignedCourses []string
}

// NewFaculty creates a faculty member with one of the teaching roles
func NewFaculty(params PersonParams, role RoleType) (*Faculty, error) {
	if !role.IsFaculty() {
		return nil, fmt.Errorf("%w: %q is not a faculty role", apperrors.ErrInvalidPerson, role)
	}
	profile, err := newProfile(params, role)
	if err != nil {
		return nil, err
	}
	return &Faculty{Profile: profile}, nil
}

// NewProfessor creates a professor
func NewProfessor(params PersonParams) (*Faculty, error) {
	return NewFaculty(params, RoleProfessor)
}

// NewLecturer creates a lecturer
func NewLecturer(params PersonParams) (*Faculty, error) {
	return NewFaculty(params, RoleLecturer)
}

// NewTA creates a teaching assistant
func NewTA(params PersonParams) (*Faculty, error) {
	return NewFaculty(params, RoleTA)
}

// AssignCourse records a course code; assigning the same code twice is a no-op
func (f *Faculty) AssignCourse(courseCode string) {
	if !slices.Contains(f.assignedCourses, courseCode) {
		f.assignedCourses = append(f.assignedCourses, courseCode)
	}
}

// AssignedCourses returns the assigned course codes in assignment order
func (f *Faculty) AssignedCourses() []string {
	return slices.Clone(f.assignedCourses)
}

// CalculateWorkload applies the role's workload policy to the assigned course count
func (f *Faculty) CalculateWorkload() int {
	return workloadPolicies[f.role](len(f.assignedCourses))
}
