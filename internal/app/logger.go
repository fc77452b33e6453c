// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/logger"
)

// InitializeLogger configures the global JSON logger from the environment.
// LOG_LEVEL defaults to info; LOG_PRETTY=true switches to human-readable
// console output for local runs.
func InitializeLogger() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	logger.Init(level, os.Getenv("LOG_PRETTY") == "true")
}
