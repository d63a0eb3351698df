// Package services holds the orchestration layer of the records system.
//
// DepartmentService resolves faculty, student and course identifiers through
// the repositories and delegates to the model methods that enforce capacity,
// prerequisites and per-semester limits.
package services
