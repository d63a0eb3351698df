package repositories

// Repositories holds the department's three lookup tables
type Repositories struct {
	FacultyRepository *FacultyRepository
	StudentRepository *StudentRepository
	CourseRepository  *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		FacultyRepository: NewFacultyRepository(),
		StudentRepository: NewStudentRepository(),
		CourseRepository:  NewCourseRepository(),
	}
}
