package logger

import (
	"strings"
)

var globalLogger = NewDefault()

// Configure sets the global logger's level and format from their names.
// Unknown names leave the current setting unchanged.
func Configure(level, format string) {
	if lvl, ok := ParseLevel(level); ok {
		globalLogger.SetLevel(lvl)
	}
	if f, ok := ParseFormat(format); ok {
		globalLogger.SetFormat(f)
	}
}

// ParseLevel parses a log level name
func ParseLevel(level string) (LogLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	case "FATAL":
		return FATAL, true
	default:
		return INFO, false
	}
}

// ParseFormat parses a log format name
func ParseFormat(format string) (LogFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONFormat, true
	case "text":
		return TextFormat, true
	default:
		return TextFormat, false
	}
}

// Global returns the global logger instance
func Global() *Logger {
	return globalLogger
}

// SetGlobal replaces the global logger instance
func SetGlobal(l *Logger) {
	globalLogger = l
}

// Component returns a global logger tagged with the component name
func Component(name string) *Logger {
	return globalLogger.WithComponent(name)
}
