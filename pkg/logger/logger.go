// Package logger wraps a zap sugared logger behind context-aware helpers so
// request-scoped fields (the request id) follow every log line.
package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

var (
	mu   sync.RWMutex
	base = zap.NewNop().Sugar()
)

// Init builds the process logger. env "production" selects JSON output.
func Init(level, env string) error {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	Set(l)
	return nil
}

// Set replaces the process logger; tests use it with zaptest/observer loggers.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l.Sugar()
}

// Sync flushes buffered entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

// WithRequestID stores the request id in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id stored in ctx, or "unknown".
func RequestID(ctx context.Context) string {
	if ctx != nil {
		if id, ok := ctx.Value(requestIDKey).(string); ok {
			return id
		}
	}
	return "unknown"
}

func fromContext(ctx context.Context) *zap.SugaredLogger {
	mu.RLock()
	l := base
	mu.RUnlock()

	if ctx == nil {
		return l
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return l.With("request_id", id)
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Errorf(format, args...)
}
