package logging

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/lmittmann/tint"

	"github.com/sagarc03/cucable"
)

// Output formats accepted by NewHandler.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger routes cucable messages to a slog.Logger.
type Logger struct {
	logger *slog.Logger
	level  cucable.LogLevel
}

var _ cucable.Logger = (*Logger)(nil)

// New returns a Logger writing to logger at the given cucable level.
// A nil logger falls back to slog.Default().
func New(logger *slog.Logger, level cucable.LogLevel) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	if !level.IsValid() {
		level = cucable.LogLevelDefault
	}
	return &Logger{logger: logger, level: level}
}

// NewHandler builds the slog handler for the given format. Text output is
// colored unless noColor is set.
func NewHandler(w io.Writer, format string, noColor bool) slog.Handler {
	if format == FormatJSON {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	})
}

// Level returns the active cucable level.
func (l *Logger) Level() cucable.LogLevel {
	return l.level
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// Enabled reports whether a message tagged with levels would be printed.
func (l *Logger) Enabled(levels ...cucable.LogLevel) bool {
	if l.level == cucable.LogLevelOff {
		return false
	}
	return len(levels) == 0 || slices.Contains(levels, l.level)
}

func (l *Logger) Log(message string, severity cucable.Severity, levels ...cucable.LogLevel) {
	if !l.Enabled(levels...) {
		return
	}
	l.logger.Log(context.Background(), toSlogLevel(severity), message)
}

func (l *Logger) Info(message string, levels ...cucable.LogLevel) {
	l.Log(message, cucable.SeverityInfo, levels...)
}

func (l *Logger) Warn(message string, levels ...cucable.LogLevel) {
	l.Log(message, cucable.SeverityWarn, levels...)
}

func (l *Logger) Error(message string, levels ...cucable.LogLevel) {
	l.Log(message, cucable.SeverityError, levels...)
}

func toSlogLevel(s cucable.Severity) slog.Level {
	switch s {
	case cucable.SeverityWarn:
		return slog.LevelWarn
	case cucable.SeverityError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
