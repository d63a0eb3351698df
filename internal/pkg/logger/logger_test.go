package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, WarnLevel, ParseLevel("warn"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lgr := New(Config{Level: WarnLevel, Format: FormatJSON, Output: &buf})

	lgr.Info().Msg("hidden")
	lgr.Warn().Str("courseCode", "CS101").Msg("Enrollment rejected")

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "warn", event["level"])
	assert.Equal(t, "CS101", event["courseCode"])
	assert.Equal(t, "Enrollment rejected", event["message"])
}
