package logger

import "strings"

// Log levels accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// ValidLevel reports whether level is one of the known level names.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return true
	default:
		return false
	}
}

// New returns a console logger writing to stdout at the given level.
// Unknown levels fall back to debug.
func New(level string) *Logger {
	return newZapLogger(strings.ToLower(strings.TrimSpace(level)))
}
