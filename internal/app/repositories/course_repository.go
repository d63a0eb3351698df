package repositories

import (
	"fmt"
	"maps"
	"slices"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// CourseRepository stores courses keyed by course code
type CourseRepository struct {
	courses map[string]*models.Course
}

// NewCourseRepository creates an empty CourseRepository
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{courses: make(map[string]*models.Course)}
}

// Create registers c under its code
func (r *CourseRepository) Create(c *models.Course) error {
	if c == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrInvalidArgument)
	}
	if _, exists := r.courses[c.Code()]; exists {
		return fmt.Errorf("%w: %s", apperrors.ErrCourseAlreadyExists, c.Code())
	}
	r.courses[c.Code()] = c
	return nil
}

// GetByCode retrieves a course by code
func (r *CourseRepository) GetByCode(code string) (*models.Course, error) {
	c, ok := r.courses[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCourseNotFound, code)
	}
	return c, nil
}

// GetAll returns every course ordered by code
func (r *CourseRepository) GetAll() []*models.Course {
	out := make([]*models.Course, 0, len(r.courses))
	for _, code := range slices.Sorted(maps.Keys(r.courses)) {
		out = append(out, r.courses[code])
	}
	return out
}
