package seed

import "github.com/yigit/unirecords/internal/app/models"

// DemoCatalog returns the sample Computer Science department: a three-course
// prerequisite chain, one instructor of each rank, one staff member and two
// students graded over two semesters.
func DemoCatalog() *Catalog {
	return &Catalog{
		Department: models.Department{Name: "Computer Science", Code: "CS"},
		Faculty: []PersonEntry{
			{ID: "F001", Name: "Dr. Ada Lovelace", Email: "ada@uni.edu", Age: 36, Role: "professor"},
			{ID: "F002", Name: "Ms. Grace Hopper", Email: "grace@uni.edu", Age: 45, Role: "lecturer"},
			{ID: "F003", Name: "Mr. Alan Turing", Email: "alan@uni.edu", Age: 24, Role: "ta"},
		},
		Staff: []PersonEntry{
			{ID: "S001", Name: "Ms. Admin", Email: "admin@uni.edu", Age: 40},
		},
		Students: []PersonEntry{
			{ID: "U100", Name: "Alice", Email: "alice@uni.edu", Age: 19, Role: "undergraduate"},
			{ID: "G200", Name: "Bob", Email: "bob@uni.edu", Age: 25, Role: "graduate"},
		},
		Courses: []CourseEntry{
			{Code: "CS101", Title: "Intro to CS", Credits: 3, Capacity: 2, Instructor: "F003"},
			{Code: "CS201", Title: "Data Structures", Credits: 3, Capacity: 2, Prerequisites: []string{"CS101"}, Instructor: "F002"},
			{Code: "CS301", Title: "Algorithms", Credits: 3, Capacity: 2, Prerequisites: []string{"CS201"}, Instructor: "F001"},
		},
		Semesters: []SemesterEntry{
			{
				Name: "2025-Spring",
				Enrollments: []EnrollmentEntry{
					{Student: "U100", Course: "CS101"},
					{Student: "G200", Course: "CS101"},
				},
				Grades: []GradeEntry{
					{Student: "U100", Course: "CS101", Grade: "A"},
					{Student: "G200", Course: "CS101", Grade: "B+"},
				},
			},
			{
				Name: "2025-Fall",
				Enrollments: []EnrollmentEntry{
					{Student: "U100", Course: "CS201"},
					{Student: "G200", Course: "CS201"},
				},
				Grades: []GradeEntry{
					{Student: "U100", Course: "CS201", Grade: "A-"},
					{Student: "G200", Course: "CS201", Grade: "B"},
				},
			},
		},
	}
}
