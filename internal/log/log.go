// Package log is a minimal leveled logger for the vibrant CLI and its
// supporting packages. Output goes to stderr so piped color values stay
// clean on stdout.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the severity of a log message.
type Level int

const (
	// LevelDebug traces parsing and palette loading in detail
	LevelDebug Level = iota
	// LevelInfo reports notable operational events
	LevelInfo
	// LevelWarn reports recoverable problems
	LevelWarn
	// LevelError reports failures
	LevelError
)

var (
	mu       sync.Mutex
	output   io.Writer = os.Stderr
	minLevel           = LevelInfo
	prefix             = "[vibrant]"
)

// SetOutput redirects log output, primarily for tests. A nil writer
// silences the logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetLevel sets the minimum level that will be emitted.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = level
}

// GetLevel returns the current minimum level.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return minLevel
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	log(LevelDebug, format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	log(LevelInfo, format, args...)
}

// Warn logs a warning.
func Warn(format string, args ...any) {
	log(LevelWarn, format, args...)
}

// Error logs an error.
func Error(format string, args ...any) {
	log(LevelError, format, args...)
}

func (l Level) label() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

func log(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level < minLevel || output == nil {
		return
	}

	fmt.Fprintf(output, prefix+" "+level.label()+": "+format+"\n", args...)
}
