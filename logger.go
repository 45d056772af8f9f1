package rotozoom

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silent drops every record. Its Enabled reports false, which lets pass
// skip building the per-pass attributes.
type silent struct{}

func (silent) Enabled(context.Context, slog.Level) bool  { return false }
func (silent) Handle(context.Context, slog.Record) error { return nil }
func (s silent) WithAttrs([]slog.Attr) slog.Handler      { return s }
func (s silent) WithGroup(string) slog.Handler           { return s }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(silent{}))
}

// SetLogger routes sampler diagnostics to l. A nil l silences them again,
// which is also the state at program start.
//
// Records emitted:
//   - [slog.LevelDebug]: "rotozoom: pass" with policy, sizes, bands and marker
//   - [slog.LevelWarn]: a WrapPow2 Sampler given a source whose sides are not powers of two
//
// Safe to call while rotations are running; a pass in flight keeps the
// logger it started with.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silent{})
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
