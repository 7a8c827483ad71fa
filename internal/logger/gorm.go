package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowQuery is the threshold above which statements are logged as warnings.
const slowQuery = 200 * time.Millisecond

// GormLogger routes GORM's statement log through the global zap logger.
type GormLogger struct {
	level gormlogger.LogLevel
}

// NewGormLogger returns a GORM logger. With verbose set every statement is
// logged at debug level; otherwise only errors and slow queries are.
func NewGormLogger(verbose bool) *GormLogger {
	if verbose {
		return &GormLogger{level: gormlogger.Info}
	}
	return &GormLogger{level: gormlogger.Warn}
}

// LogMode implements gormlogger.Interface.
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &GormLogger{level: level}
}

// Info implements gormlogger.Interface.
func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		Get().Infof(msg, args...)
	}
}

// Warn implements gormlogger.Interface.
func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		Get().Warnf(msg, args...)
	}
}

// Error implements gormlogger.Interface.
func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		Get().Errorf(msg, args...)
	}
}

// Trace implements gormlogger.Interface.
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := Get().Desugar()
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		log.Error("query failed", zap.Error(err), zap.Duration("elapsed", elapsed), zap.Int64("rows", rows), zap.String("sql", sql))
	case elapsed > slowQuery && l.level >= gormlogger.Warn:
		sql, rows := fc()
		log.Warn("slow query", zap.Duration("elapsed", elapsed), zap.Int64("rows", rows), zap.String("sql", sql))
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		log.Debug("query", zap.Duration("elapsed", elapsed), zap.Int64("rows", rows), zap.String("sql", sql))
	}
}
