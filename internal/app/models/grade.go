package models

import (
	"fmt"
	"strings"

	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// LetterGrade is a transcript grade
type LetterGrade string

const (
	GradeA      LetterGrade = "A"
	GradeAMinus LetterGrade = "A-"
	GradeBPlus  LetterGrade = "B+"
	GradeB      LetterGrade = "B"
	GradeBMinus LetterGrade = "B-"
	GradeCPlus  LetterGrade = "C+"
	GradeC      LetterGrade = "C"
	GradeCMinus LetterGrade = "C-"
	GradeD      LetterGrade = "D"
	GradeF      LetterGrade = "F"
)

var gradePoints = map[LetterGrade]float64{
	GradeA:      4.0,
	GradeAMinus: 3.7,
	GradeBPlus:  3.3,
	GradeB:      3.0,
	GradeBMinus: 2.7,
	GradeCPlus:  2.3,
	GradeC:      2.0,
	GradeCMinus: 1.7,
	GradeD:      1.0,
	GradeF:      0.0,
}

// Valid reports whether g is one of the recognized letter grades
func (g LetterGrade) Valid() bool {
	_, ok := gradePoints[g]
	return ok
}

// Points returns the grade-point value of g; unrecognized grades are worth 0
func (g LetterGrade) Points() float64 {
	return gradePoints[g]
}

// ParseLetterGrade accepts a grade such as "b+" and returns its canonical form
func ParseLetterGrade(s string) (LetterGrade, error) {
	g := LetterGrade(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidGrade, s)
	}
	return g, nil
}

// GradeEntry is one line of a transcript
type GradeEntry struct {
	CourseCode string      `json:"courseCode" yaml:"course_code"`
	Credits    int         `json:"credits" yaml:"credits"`
	Letter     LetterGrade `json:"letter" yaml:"letter"`
}
