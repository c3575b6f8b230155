package shape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var (
	loggerPtr atomic.Pointer[slog.Logger]
	debugSet  atomic.Pointer[string]
)

func init() {
	loggerPtr.Store(newNopLogger())
	empty := ""
	debugSet.Store(&empty)
}

// SetLogger configures the logger used by shape and the drawing backends.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Debug records are only emitted for the categories enabled with
// SetDebugFlags, and only if the handler accepts [slog.LevelDebug].
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Debug flag categories understood by SetDebugFlags.
const (
	DebugConstruct = 'c' // shape construction
	DebugDraw      = 'd' // draw calls, in shapes and backends
	DebugAll       = '@' // every category
)

// SetDebugFlags enables the debug categories named by the characters of flags,
// replacing the previous set. An empty string disables debug output.
func SetDebugFlags(flags string) {
	debugSet.Store(&flags)
}

// DebugEnabled reports whether the debug category flag is active.
func DebugEnabled(flag rune) bool {
	flags := *debugSet.Load()
	return strings.ContainsRune(flags, DebugAll) || strings.ContainsRune(flags, flag)
}

// Debugf logs a formatted debug record under the category flag.
// The message is only formatted when the category is enabled.
func Debugf(flag rune, format string, args ...interface{}) {
	if !DebugEnabled(flag) {
		return
	}
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...), slog.String("flag", string(flag)))
}
