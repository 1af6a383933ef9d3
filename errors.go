package cucable

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is the common cause of every property error.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnknownParallelizationMode is returned for mode names other than features or scenarios
	ErrUnknownParallelizationMode = fmt.Errorf("%w: unknown parallelization mode", ErrInvalidConfiguration)
	// ErrInvalidTag is returned when a scenario tag does not start with '@'
	ErrInvalidTag = fmt.Errorf("%w: invalid scenario tag", ErrInvalidConfiguration)
	// ErrMissingProperties is returned when mandatory properties are not set
	ErrMissingProperties = fmt.Errorf("%w: missing mandatory properties", ErrInvalidConfiguration)
)

// ConfigError is a caller-correctable configuration failure.
// Error returns Message verbatim; Kind is one of the sentinels above.
type ConfigError struct {
	Kind    error
	Message string
	// Properties lists the missing property names for ErrMissingProperties.
	Properties []string
}

func newConfigError(kind error, message string) *ConfigError {
	return &ConfigError{Kind: kind, Message: message}
}

func (e *ConfigError) Error() string {
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Kind
}
