package logger

import (
	"os"
	"sync"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// GetLogger returns the process-wide logger, initializing it from the
// environment on first use.
func GetLogger() *Logger {
	once.Do(func() {
		if globalLogger == nil {
			level := "info"
			if os.Getenv("DEBUG") == "true" {
				level = "debug"
			} else if os.Getenv("LOG_LEVEL") != "" {
				level = os.Getenv("LOG_LEVEL")
			}

			globalLogger = New(Config{
				Level:  level,
				Format: "json",
				Output: "stdout",
			})
		}
	})
	return globalLogger
}

// SetLogger replaces the global logger, typically after config load.
func SetLogger(logger *Logger) {
	globalLogger = logger
}
