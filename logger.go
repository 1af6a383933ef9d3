package cucable

import (
	"fmt"
	"strings"
)

// Severity is the severity of a logged message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// LogLevel is the verbosity tier the generator runs with. A message names
// the levels it is shown in; the logger prints it only when its active level
// is one of them.
type LogLevel string

const (
	LogLevelDefault LogLevel = "default"
	LogLevelCompact LogLevel = "compact"
	LogLevelMinimal LogLevel = "minimal"
	LogLevelOff     LogLevel = "off"
)

func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDefault, LogLevelCompact, LogLevelMinimal, LogLevelOff:
		return true
	default:
		return false
	}
}

// ParseLogLevel maps a level name to a LogLevel, ignoring case.
// An empty name selects LogLevelDefault.
func ParseLogLevel(s string) (LogLevel, error) {
	if strings.TrimSpace(s) == "" {
		return LogLevelDefault, nil
	}
	level := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	if !level.IsValid() {
		return "", fmt.Errorf("invalid log level: %s (valid levels: default, compact, minimal, off)", s)
	}
	return level, nil
}

// Logger receives the messages of the property manager.
type Logger interface {
	Log(message string, severity Severity, levels ...LogLevel)
}
