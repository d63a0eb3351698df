package services

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/repositories"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// DepartmentService is the lookup and coordination point for one department.
// It resolves identifiers to entities and delegates to Course and Student.
// It is not safe for concurrent use; callers sharing one across goroutines
// must serialize access themselves.
type DepartmentService struct {
	department  models.Department
	facultyRepo *repositories.FacultyRepository
	studentRepo *repositories.StudentRepository
	courseRepo  *repositories.CourseRepository
	activities  []models.Activity
	logger      zerolog.Logger
	now         func() time.Time
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(department models.Department, repos *repositories.Repositories, lgr zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		department:  department,
		facultyRepo: repos.FacultyRepository,
		studentRepo: repos.StudentRepository,
		courseRepo:  repos.CourseRepository,
		logger:      lgr.With().Str("department", department.Code).Logger(),
		now:         time.Now,
	}
}

// Department returns the department's identity
func (s *DepartmentService) Department() models.Department {
	return s.department
}

// AddCourse registers a course under its code
func (s *DepartmentService) AddCourse(course *models.Course) error {
	if err := s.courseRepo.Create(course); err != nil {
		s.logger.Warn().Err(err).Msg("Course registration rejected")
		return err
	}
	s.logger.Debug().Str("courseCode", course.Code()).Msg("Course registered")
	return nil
}

// AddFaculty registers a faculty member under their ID
func (s *DepartmentService) AddFaculty(faculty *models.Faculty) error {
	if err := s.facultyRepo.Create(faculty); err != nil {
		s.logger.Warn().Err(err).Msg("Faculty registration rejected")
		return err
	}
	s.logger.Debug().Str("facultyId", faculty.ID()).Str("role", string(faculty.Role())).Msg("Faculty registered")
	return nil
}

// RegisterStudent registers a student under their ID
func (s *DepartmentService) RegisterStudent(student *models.Student) error {
	if err := s.studentRepo.Create(student); err != nil {
		s.logger.Warn().Err(err).Msg("Student registration rejected")
		return err
	}
	s.logger.Debug().Str("studentId", student.ID()).Str("role", string(student.Role())).Msg("Student registered")
	return nil
}

// GetFaculty retrieves a registered faculty member
func (s *DepartmentService) GetFaculty(id string) (*models.Faculty, error) {
	return s.facultyRepo.GetByID(id)
}

// GetStudent retrieves a registered student
func (s *DepartmentService) GetStudent(id string) (*models.Student, error) {
	return s.studentRepo.GetByID(id)
}

// GetCourse retrieves a registered course
func (s *DepartmentService) GetCourse(code string) (*models.Course, error) {
	return s.courseRepo.GetByCode(code)
}

// ListFaculty returns every faculty member ordered by ID
func (s *DepartmentService) ListFaculty() []*models.Faculty {
	return s.facultyRepo.GetAll()
}

// ListStudents returns every student ordered by ID
func (s *DepartmentService) ListStudents() []*models.Student {
	return s.studentRepo.GetAll()
}

// ListCourses returns every course ordered by code
func (s *DepartmentService) ListCourses() []*models.Course {
	return s.courseRepo.GetAll()
}

// AssignFacultyToCourse makes facultyID the course's instructor and adds the
// course to the faculty member's assignments
func (s *DepartmentService) AssignFacultyToCourse(facultyID, courseCode string) error {
	faculty, err := s.facultyRepo.GetByID(facultyID)
	if err != nil {
		return err
	}
	course, err := s.courseRepo.GetByCode(courseCode)
	if err != nil {
		return err
	}

	course.AssignFaculty(faculty.ID())
	faculty.AssignCourse(course.Code())

	s.record(models.Activity{Kind: models.ActivityFacultyAssigned, FacultyID: facultyID, CourseCode: courseCode})
	s.logger.Debug().Str("facultyId", facultyID).Str("courseCode", courseCode).Msg("Faculty assigned to course")
	return nil
}

// Enroll enrolls a student in a course for a semester
func (s *DepartmentService) Enroll(studentID, courseCode, semester string) error {
	student, course, err := s.resolve(studentID, courseCode)
	if err != nil {
		return err
	}

	if err := course.Enroll(student, semester); err != nil {
		s.rejection(err).
			Str("studentId", studentID).
			Str("courseCode", courseCode).
			Str("semester", semester).
			Msg("Enrollment rejected")
		return err
	}

	s.record(models.Activity{Kind: models.ActivityEnrolled, StudentID: studentID, CourseCode: courseCode, Semester: semester})
	s.logger.Debug().Str("studentId", studentID).Str("courseCode", courseCode).Str("semester", semester).Msg("Student enrolled")
	return nil
}

// Drop removes a student from a course for a semester
func (s *DepartmentService) Drop(studentID, courseCode, semester string) error {
	student, course, err := s.resolve(studentID, courseCode)
	if err != nil {
		return err
	}

	course.Drop(student, semester)

	s.record(models.Activity{Kind: models.ActivityDropped, StudentID: studentID, CourseCode: courseCode, Semester: semester})
	s.logger.Debug().Str("studentId", studentID).Str("courseCode", courseCode).Str("semester", semester).Msg("Student dropped")
	return nil
}

// RecordGrade adds a transcript entry using the course's credit value
func (s *DepartmentService) RecordGrade(studentID, semester, courseCode string, letter models.LetterGrade) error {
	student, course, err := s.resolve(studentID, courseCode)
	if err != nil {
		return err
	}

	if err := student.AddGrade(semester, course.Code(), course.Credits(), letter); err != nil {
		s.rejection(err).
			Str("studentId", studentID).
			Str("courseCode", courseCode).
			Str("grade", string(letter)).
			Msg("Grade rejected")
		return err
	}

	s.record(models.Activity{Kind: models.ActivityGradeRecorded, StudentID: studentID, CourseCode: courseCode, Semester: semester, Grade: letter})
	s.logger.Debug().Str("studentId", studentID).Str("courseCode", courseCode).Str("grade", string(letter)).Msg("Grade recorded")
	return nil
}

// Activities returns a copy of the activity log, oldest first
func (s *DepartmentService) Activities() []models.Activity {
	return slices.Clone(s.activities)
}

func (s *DepartmentService) resolve(studentID, courseCode string) (*models.Student, *models.Course, error) {
	student, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		return nil, nil, err
	}
	course, err := s.courseRepo.GetByCode(courseCode)
	if err != nil {
		return nil, nil, err
	}
	return student, course, nil
}

func (s *DepartmentService) record(activity models.Activity) {
	activity.ID = uuid.New()
	activity.At = s.now()
	s.activities = append(s.activities, activity)
}

// rejection starts a log event for a refused operation. Rule violations log at
// warn with their details; anything outside the taxonomy logs at error.
func (s *DepartmentService) rejection(err error) *zerolog.Event {
	event := s.logger.Error()
	if apperrors.Is(err, apperrors.ErrInvalidArgument, apperrors.ErrEnrollmentRejected, apperrors.ErrEnrollmentLimitExceeded) {
		event = s.logger.Warn()
	}
	event = event.Err(err).Str("errorCode", apperrors.Code(err))

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && len(custom.Details) > 0 {
		event = event.Interface("details", custom.Details)
	}
	return event
}
