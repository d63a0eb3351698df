package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the log level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Format selects the output encoding
type Format string

const (
	// FormatJSON writes one JSON object per event
	FormatJSON Format = "json"
	// FormatText writes human-readable console lines
	FormatText Format = "text"
)

// Config represents logger configuration
type Config struct {
	Level  LogLevel
	Format Format
	// Output defaults to os.Stderr so command output on stdout stays clean
	Output io.Writer
}

var defaultLogger zerolog.Logger

// ParseLevel maps a configured level name to a LogLevel, falling back to info
func ParseLevel(level string) LogLevel {
	switch LogLevel(strings.ToLower(strings.TrimSpace(level))) {
	case DebugLevel:
		return DebugLevel
	case WarnLevel:
		return WarnLevel
	case ErrorLevel:
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger for the given config without touching the package default
func New(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	var writer io.Writer = config.Output
	if config.Format == FormatText {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(writer).Level(config.Level.zerologLevel()).With().Timestamp().Logger()
}

// Configure replaces the package default logger and the zerolog global logger
func Configure(config Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	defaultLogger = New(config)
	log.Logger = defaultLogger
	return defaultLogger
}

// Nop returns a logger that discards everything, for tests and library callers
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Error logs an error message
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

func init() {
	Configure(Config{
		Level:  InfoLevel,
		Format: FormatText,
		Output: os.Stderr,
	})
}
