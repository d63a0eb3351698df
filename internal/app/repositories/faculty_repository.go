package repositories

import (
	"fmt"
	"maps"
	"slices"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// FacultyRepository stores faculty members keyed by person ID
type FacultyRepository struct {
	faculty map[string]*models.Faculty
}

// NewFacultyRepository creates an empty FacultyRepository
func NewFacultyRepository() *FacultyRepository {
	return &FacultyRepository{faculty: make(map[string]*models.Faculty)}
}

// Create registers f under its ID
func (r *FacultyRepository) Create(f *models.Faculty) error {
	if f == nil {
		return fmt.Errorf("%w: faculty is nil", apperrors.ErrInvalidArgument)
	}
	if _, exists := r.faculty[f.ID()]; exists {
		return fmt.Errorf("%w: %s", apperrors.ErrFacultyAlreadyExists, f.ID())
	}
	r.faculty[f.ID()] = f
	return nil
}

// GetByID retrieves a faculty member by ID
func (r *FacultyRepository) GetByID(id string) (*models.Faculty, error) {
	f, ok := r.faculty[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFacultyNotFound, id)
	}
	return f, nil
}

// GetAll returns every faculty member ordered by ID
func (r *FacultyRepository) GetAll() []*models.Faculty {
	out := make([]*models.Faculty, 0, len(r.faculty))
	for _, id := range slices.Sorted(maps.Keys(r.faculty)) {
		out = append(out, r.faculty[id])
	}
	return out
}
