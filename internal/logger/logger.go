package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options selects the level and encoding of the process logger.
type Options struct {
	Level  string
	Format string
}

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns a singleton logger configured with the provided options.
// The first call initializes the logger; subsequent calls ignore opts
// and return the already initialized instance.
func Get(opts Options) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(opts)
	})
	return globalLogger
}
