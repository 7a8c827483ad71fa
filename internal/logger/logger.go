// Package logger provides structured logging using Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment.
// "production" logs JSON at info level, "test" discards everything and any
// other value logs human-readable console output at debug level.
func Init(env string) {
	once.Do(func() {
		sugar = build(env).Sugar()
	})
}

func build(env string) *zap.Logger {
	var (
		base *zap.Logger
		err  error
	)

	switch env {
	case "production":
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		base, err = cfg.Build()
	case "test":
		base = zap.NewNop()
	default:
		base, err = zap.NewDevelopment()
	}

	if err != nil {
		// Fallback to nop logger if initialization fails.
		base = zap.NewNop()
	}
	return base.With(zap.String("service", "ledger"))
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	Init("development")
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
