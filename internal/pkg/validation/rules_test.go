package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Code     string `validate:"required"`
	Capacity int    `validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Code: "CS101", Capacity: 1}))

	err := Struct(sample{})
	assert.EqualError(t, err, "Code: required; Capacity: gt=0")
}
