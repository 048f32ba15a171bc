// Package logging sets up the process-wide zap logger. The renderer
// packages never log; only the CLI does.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Initialize builds the logger. Verbose enables debug-level console
// output; otherwise only warnings and errors reach stderr.
func Initialize(verbose bool) {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	cfg := zap.Config{
		Level:            level,
		Development:      verbose,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := cfg.Build()
	if err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger = l
}

// L returns the configured logger.
func L() *zap.Logger {
	return logger
}

// Close flushes buffered log entries.
func Close() {
	_ = logger.Sync()
}
