package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/services"
)

// Format selects how a report is rendered
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported report format %q", s)
	}
}

// Report summarizes a department: who does what, teaching loads and student standing
type Report struct {
	Department models.Department `yaml:"department"`
	People     []PersonLine      `yaml:"people"`
	Workloads  []WorkloadLine    `yaml:"workloads"`
	Standings  []StandingLine    `yaml:"standings"`
}

// PersonLine is one person's role and responsibilities
type PersonLine struct {
	ID               string `yaml:"id"`
	Person           string `yaml:"person"`
	Contact          string `yaml:"contact"`
	Responsibilities string `yaml:"responsibilities"`
}

// WorkloadLine is one faculty member's teaching load
type WorkloadLine struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	Courses  []string `yaml:"courses"`
	Workload int      `yaml:"workload"`
}

// StandingLine is one student's GPA and status
type StandingLine struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	GPA         float64            `yaml:"gpa"`
	Status      string             `yaml:"status"`
	SemesterGPA map[string]float64 `yaml:"semester_gpa,omitempty"`
}

// Build gathers the report for svc. Every student's cumulative GPA is
// recalculated and stored. People not tracked by the department, such as
// staff, are listed after students and faculty.
func Build(svc *services.DepartmentService, others ...models.Person) *Report {
	r := &Report{Department: svc.Department()}

	students := svc.ListStudents()
	faculty := svc.ListFaculty()

	people := make([]models.Person, 0, len(students)+len(faculty)+len(others))
	for _, s := range students {
		people = append(people, s)
	}
	for _, f := range faculty {
		people = append(people, f)
	}
	people = append(people, others...)

	for _, p := range people {
		r.People = append(r.People, PersonLine{
			ID:               p.ID(),
			Person:           p.String(),
			Contact:          p.ContactInfo(),
			Responsibilities: p.Responsibilities(),
		})
	}

	for _, f := range faculty {
		r.Workloads = append(r.Workloads, WorkloadLine{
			ID:       f.ID(),
			Name:     f.Name(),
			Role:     string(f.Role()),
			Courses:  f.AssignedCourses(),
			Workload: f.CalculateWorkload(),
		})
	}

	for _, s := range students {
		line := StandingLine{
			ID:   s.ID(),
			Name: s.Name(),
			GPA:  s.CalculateGPA(""),
		}
		line.Status = string(s.AcademicStatus())
		for _, semester := range s.Record().Semesters() {
			if line.SemesterGPA == nil {
				line.SemesterGPA = make(map[string]float64)
			}
			line.SemesterGPA[semester] = s.CalculateGPA(semester)
		}
		r.Standings = append(r.Standings, line)
	}

	return r
}

// Render writes the report to w in the given format
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	case FormatText:
		return r.renderText(w)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

func (r *Report) renderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "=== %s (%s) ===\n", r.Department.Name, r.Department.Code)

	fmt.Fprintln(tw, "--- Responsibilities ---")
	for _, p := range r.People {
		fmt.Fprintf(tw, "%s:\t%s\n", p.Person, p.Responsibilities)
	}

	fmt.Fprintln(tw, "--- Workloads ---")
	for _, l := range r.Workloads {
		fmt.Fprintf(tw, "%s\t%s\tcourses=%s\tworkload=%d\n", l.Name, l.Role, strings.Join(l.Courses, ","), l.Workload)
	}

	fmt.Fprintln(tw, "--- Student status ---")
	for _, l := range r.Standings {
		fmt.Fprintf(tw, "%s\tGPA=%.2f\tStatus=%s\n", l.Name, l.GPA, l.Status)
	}

	return tw.Flush()
}
