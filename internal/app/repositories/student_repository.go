package repositories

import (
	"fmt"
	"maps"
	"slices"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// StudentRepository stores students keyed by person ID
type StudentRepository struct {
	students map[string]*models.Student
}

// NewStudentRepository creates an empty StudentRepository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{students: make(map[string]*models.Student)}
}

// Create registers s under its ID
func (r *StudentRepository) Create(s *models.Student) error {
	if s == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrInvalidArgument)
	}
	if _, exists := r.students[s.ID()]; exists {
		return fmt.Errorf("%w: %s", apperrors.ErrStudentAlreadyExists, s.ID())
	}
	r.students[s.ID()] = s
	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(id string) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStudentNotFound, id)
	}
	return s, nil
}

// GetAll returns every student ordered by ID
func (r *StudentRepository) GetAll() []*models.Student {
	out := make([]*models.Student, 0, len(r.students))
	for _, id := range slices.Sorted(maps.Keys(r.students)) {
		out = append(out, r.students[id])
	}
	return out
}
