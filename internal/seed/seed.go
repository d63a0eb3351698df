package seed

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/services"
)

// Options tunes how a catalog is applied
type Options struct {
	// EnrollmentLimit overrides the per-semester cap of every created student; 0 keeps the default
	EnrollmentLimit int
}

// Roster holds the people created from a catalog that a department does not track
type Roster struct {
	Staff []*models.Staff
}

// Apply registers the catalog's people and courses with svc, assigns
// instructors, then replays each semester in order. A failing step is logged
// and collected; the remaining steps still run.
func Apply(svc *services.DepartmentService, catalog *Catalog, opts Options, lgr zerolog.Logger) (*Roster, error) {
	roster := &Roster{}
	var finalErr error

	lgr.Info().Str("department", catalog.Department.Name).Msg("Applying catalog...")

	for _, entry := range catalog.Faculty {
		role, err := entry.facultyRole()
		if err == nil {
			var f *models.Faculty
			if f, err = models.NewFaculty(entry.params(), role); err == nil {
				err = svc.AddFaculty(f)
			}
		}
		if err != nil {
			lgr.Error().Err(err).Str("facultyId", entry.ID).Msg("Error creating faculty member")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, entry := range catalog.Staff {
		staff, err := models.NewStaff(entry.params())
		if err != nil {
			lgr.Error().Err(err).Str("staffId", entry.ID).Msg("Error creating staff member")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		roster.Staff = append(roster.Staff, staff)
	}

	for _, entry := range catalog.Students {
		if err := addStudent(svc, entry, opts); err != nil {
			lgr.Error().Err(err).Str("studentId", entry.ID).Msg("Error creating student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, entry := range catalog.Courses {
		course, err := models.NewCourse(models.CourseParams{
			Code:          entry.Code,
			Title:         entry.Title,
			Credits:       entry.Credits,
			Capacity:      entry.Capacity,
			Prerequisites: entry.Prerequisites,
		})
		if err == nil {
			err = svc.AddCourse(course)
		}
		if err != nil {
			lgr.Error().Err(err).Str("courseCode", entry.Code).Msg("Error creating course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, entry := range catalog.Courses {
		if entry.Instructor == "" {
			continue
		}
		if err := svc.AssignFacultyToCourse(entry.Instructor, entry.Code); err != nil {
			lgr.Error().Err(err).Str("courseCode", entry.Code).Msg("Error assigning instructor")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, semester := range catalog.Semesters {
		for _, e := range semester.Enrollments {
			if err := svc.Enroll(e.Student, e.Course, semester.Name); err != nil {
				lgr.Error().Err(err).Str("semester", semester.Name).Msg("Error enrolling student")
				finalErr = errors.Join(finalErr, err)
			}
		}
		for _, g := range semester.Grades {
			letter, err := models.ParseLetterGrade(g.Grade)
			if err == nil {
				err = svc.RecordGrade(g.Student, semester.Name, g.Course, letter)
			}
			if err != nil {
				lgr.Error().Err(err).Str("semester", semester.Name).Msg("Error recording grade")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Msg("Catalog applied.")
	return roster, finalErr
}

func addStudent(svc *services.DepartmentService, entry PersonEntry, opts Options) error {
	role, err := entry.studentRole()
	if err != nil {
		return err
	}
	student, err := models.NewStudent(entry.params(), role)
	if err != nil {
		return err
	}
	if opts.EnrollmentLimit > 0 {
		if err := student.Record().SetEnrollmentLimit(opts.EnrollmentLimit); err != nil {
			return err
		}
	}
	return svc.RegisterStudent(student)
}
