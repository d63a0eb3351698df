package models

// RoleType tags the concrete kind of a person. Responsibilities and faculty
// workload policies are looked up by this tag.
type RoleType string

const (
	RoleStaff                RoleType = "Staff"
	RoleFaculty              RoleType = "Faculty"
	RoleProfessor            RoleType = "Professor"
	RoleLecturer             RoleType = "Lecturer"
	RoleTA                   RoleType = "TA"
	RoleStudent              RoleType = "Student"
	RoleUndergraduateStudent RoleType = "UndergraduateStudent"
	RoleGraduateStudent      RoleType = "GraduateStudent"
)

var responsibilities = map[RoleType]string{
	RoleStaff:                "Support operations and administration.",
	RoleFaculty:              "Teach courses and contribute to the academic mission.",
	RoleProfessor:            "Teach, conduct research, supervise theses, serve on committees.",
	RoleLecturer:             "Teach multiple sections and focus on pedagogy.",
	RoleTA:                   "Assist teaching, hold labs/tutorials, grade under supervision.",
	RoleStudent:              "Attend classes, complete assessments, maintain academic standing.",
	RoleUndergraduateStudent: "Complete undergraduate coursework and foundational projects.",
	RoleGraduateStudent:      "Complete advanced coursework, research, and thesis/dissertation.",
}

// Responsibilities returns the fixed duty description of the role
func (r RoleType) Responsibilities() string {
	return responsibilities[r]
}

// IsFaculty reports whether r is a teaching role
func (r RoleType) IsFaculty() bool {
	_, ok := workloadPolicies[r]
	return ok
}

// IsStudent reports whether r is a student role
func (r RoleType) IsStudent() bool {
	switch r {
	case RoleStudent, RoleUndergraduateStudent, RoleGraduateStudent:
		return true
	}
	return false
}

// AcademicStatus is the three-tier standing derived from a stored GPA
type AcademicStatus string

const (
	StatusDeansList    AcademicStatus = "Dean's List"
	StatusGoodStanding AcademicStatus = "Good Standing"
	StatusProbation    AcademicStatus = "Probation"
)

// Lower bounds of each tier, inclusive
const (
	DeansListThreshold    = 3.7
	GoodStandingThreshold = 2.0
)

// ClassifyGPA maps a GPA to its academic status
func ClassifyGPA(gpa float64) AcademicStatus {
	switch {
	case gpa >= DeansListThreshold:
		return StatusDeansList
	case gpa >= GoodStandingThreshold:
		return StatusGoodStanding
	default:
		return StatusProbation
	}
}
