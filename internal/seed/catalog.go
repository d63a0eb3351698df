package seed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// Catalog describes a department's people, courses and semester history
type Catalog struct {
	Department models.Department `yaml:"department"`
	Faculty    []PersonEntry     `yaml:"faculty"`
	Staff      []PersonEntry     `yaml:"staff"`
	Students   []PersonEntry     `yaml:"students"`
	Courses    []CourseEntry     `yaml:"courses"`
	Semesters  []SemesterEntry   `yaml:"semesters"`
}

// PersonEntry describes one person. Role selects the concrete kind:
// professor, lecturer, ta or faculty for faculty; undergraduate, graduate or
// student for students. Staff entries ignore it.
type PersonEntry struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Age   int    `yaml:"age"`
	Role  string `yaml:"role"`
}

// CourseEntry describes one course and, optionally, its instructor
type CourseEntry struct {
	Code          string   `yaml:"code"`
	Title         string   `yaml:"title"`
	Credits       int      `yaml:"credits"`
	Capacity      int      `yaml:"capacity"`
	Prerequisites []string `yaml:"prerequisites"`
	Instructor    string   `yaml:"instructor"`
}

// SemesterEntry lists the enrollments made and grades awarded in one semester.
// Enrollments are applied before grades.
type SemesterEntry struct {
	Name        string            `yaml:"name"`
	Enrollments []EnrollmentEntry `yaml:"enrollments"`
	Grades      []GradeEntry      `yaml:"grades"`
}

// EnrollmentEntry enrolls a student in a course
type EnrollmentEntry struct {
	Student string `yaml:"student"`
	Course  string `yaml:"course"`
}

// GradeEntry awards a letter grade
type GradeEntry struct {
	Student string `yaml:"student"`
	Course  string `yaml:"course"`
	Grade   string `yaml:"grade"`
}

var facultyRoles = map[string]models.RoleType{
	"faculty":   models.RoleFaculty,
	"professor": models.RoleProfessor,
	"lecturer":  models.RoleLecturer,
	"ta":        models.RoleTA,
}

var studentRoles = map[string]models.RoleType{
	"":              models.RoleStudent,
	"student":       models.RoleStudent,
	"undergraduate": models.RoleUndergraduateStudent,
	"graduate":      models.RoleGraduateStudent,
}

func (p PersonEntry) params() models.PersonParams {
	return models.PersonParams{ID: p.ID, Name: p.Name, Email: p.Email, Age: p.Age}
}

func (p PersonEntry) facultyRole() (models.RoleType, error) {
	role := strings.ToLower(strings.TrimSpace(p.Role))
	if role == "" {
		return models.RoleFaculty, nil
	}
	if r, ok := facultyRoles[role]; ok {
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown faculty role %q for %s", apperrors.ErrInvalidPerson, p.Role, p.ID)
}

func (p PersonEntry) studentRole() (models.RoleType, error) {
	if r, ok := studentRoles[strings.ToLower(strings.TrimSpace(p.Role))]; ok {
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown student role %q for %s", apperrors.ErrInvalidPerson, p.Role, p.ID)
}

// LoadCatalog reads a catalog from a YAML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &catalog, nil
}
