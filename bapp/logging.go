package bapp

import (
	"github.com/advdv/broute"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger configured from the environment. It uses
// JSON encoding; BROUTE_LOG_LEVEL controls the level (debug, info, warn,
// error).
func NewLogger(env Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(env.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogRouteRegistered(pattern string) {
	l.Logger.Info("registered route", zap.String("pattern", pattern))
}

func (l zapLogger) LogUnhandledServeError(err error) {
	l.Logger.Error("unhandled server error", zap.Error(err))
}

func newZapBrouteLogger(l *zap.Logger) broute.Logger {
	return zapLogger{l.Named("broute").Named("bapp")}
}
