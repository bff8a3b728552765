package broute

import (
	"log"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogRouteRegistered(pattern string)
	LogUnhandledServeError(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogRouteRegistered(pattern string) {
	l.Logger.Printf("broute: registered route: %s", pattern)
}

func (l stdLogger) LogUnhandledServeError(err error) {
	l.Logger.Printf("broute: unhandled server error: %s", err)
}

func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogRouteRegistered     int64
	NumLogUnhandledServeError int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogRouteRegistered(pattern string) {
	atomic.AddInt64(&l.NumLogRouteRegistered, 1)
	l.tb.Logf("broute: registered route: %s", pattern)
}

func (l *TestLogger) LogUnhandledServeError(err error) {
	atomic.AddInt64(&l.NumLogUnhandledServeError, 1)
	l.tb.Logf("broute: unhandled server error: %s", err)
}

var _ Logger = &TestLogger{}
