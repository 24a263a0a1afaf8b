package app

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug", "DEBUG":
		return LogLevelDebug
	case "info", "INFO":
		return LogLevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LogLevelWarn
	case "error", "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging. The terminal is owned by the
// renderer while the editor runs, so output goes to a file or is
// discarded, never to the screen.
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	output   io.Writer
	fields   map[string]any
	disabled bool
}

// NewLogger creates a logger writing to output at the given level.
func NewLogger(output io.Writer, level LogLevel) *Logger {
	return &Logger{
		level:  level,
		output: output,
		fields: make(map[string]any),
	}
}

// NullLogger discards all output.
var NullLogger = &Logger{disabled: true}

// WithField returns a new logger with the given field added to every
// message.
func (l *Logger) WithField(key string, value any) *Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	return &Logger{
		level:    l.level,
		output:   l.output,
		fields:   fields,
		disabled: l.disabled,
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) { l.log(LogLevelDebug, msg, args...) }

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) { l.log(LogLevelInfo, msg, args...) }

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) { l.log(LogLevelWarn, msg, args...) }

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) { l.log(LogLevelError, msg, args...) }

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled || l.output == nil || level < l.level {
		return
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	line := fmt.Sprintf("%s [%s] %s", time.Now().Format("2006-01-02T15:04:05.000"), level, msg)
	if len(l.fields) > 0 {
		line += " {"
		first := true
		for k, v := range l.fields {
			if !first {
				line += ", "
			}
			line += fmt.Sprintf("%s=%v", k, v)
			first = false
		}
		line += "}"
	}

	_, _ = l.output.Write([]byte(line + "\n"))
}
