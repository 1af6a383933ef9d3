// Package logging provides a log/slog backed implementation of cucable.Logger.
//
// Messages carry the cucable log levels they are shown in. A Logger prints a
// message only when its active level is one of them, or when the message names
// no level at all. LogLevelOff silences everything.
//
// Text output uses github.com/lmittmann/tint; JSON output uses slog's JSON handler.
package logging
