package main

import (
	"context"
	"errors"

	"github.com/sagarc03/cucable/logging"
)

// loggerKey is the context key for storing the configured logger.
type loggerKey struct{}

// withLogger returns a new context with the logger stored.
func withLogger(ctx context.Context, logger *logging.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// loggerFromContext retrieves the logger from context.
// Returns an error if logger is not found.
func loggerFromContext(ctx context.Context) (*logging.Logger, error) {
	logger, ok := ctx.Value(loggerKey{}).(*logging.Logger)
	if !ok || logger == nil {
		return nil, errors.New("logger not found in context")
	}
	return logger, nil
}
