// Package log holds the process-wide logger for the printtrace CLI.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop()

// Init configures the global logger. verbose enables debug level; jsonOut
// switches from console to JSON encoding.
func Init(verbose, jsonOut bool) {
	cfg := zap.NewProductionConfig()
	if !jsonOut {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		cfg.EncoderConfig.TimeKey = "" // console output stays terse
	}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		// Config is static; Build only fails on bad user sinks.
		panic(err)
	}
	logger = l
}

// L returns the global logger. Before Init it is a nop logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes buffered log entries. Call on process exit.
func Sync() {
	_ = logger.Sync()
}
