// Package logging constructs the zap loggers used across the tool.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger, lowered to debug level when requested.
func New(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Nop returns a logger that discards everything. Used where no logger was
// supplied.
func Nop() *zap.Logger {
	return zap.NewNop()
}
