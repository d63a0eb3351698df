package models

// Department identifies the unit that owns faculty, students and courses
type Department struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}
