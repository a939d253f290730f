package ggart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package-wide default logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(NopLogger())
}

// SetLogger configures the default logger for ggart and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Views built with artview.WithLogger use their own logger instead.
//
// Log levels used by ggart:
//   - [slog.LevelDebug]: surface lifecycle notifications, skipped draws
//   - [slog.LevelWarn]: dropped frames (surface became invalid mid-draw)
//   - [slog.LevelError]: unexpected surface failures
//
// Example:
//
//	ggart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = NopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current default logger.
// Sub-packages call this so they share one configuration without import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
