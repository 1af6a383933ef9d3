package main

import (
	"io"
	"log"
	"log/slog"

	"github.com/sagarc03/cucable"
	"github.com/sagarc03/cucable/config"
	"github.com/sagarc03/cucable/logging"
)

func setupLogging(w io.Writer, cfg config.LogConfig, noColor bool) *logging.Logger {
	level, err := cucable.ParseLogLevel(cfg.Level)
	if err != nil {
		level = cucable.LogLevelDefault
	}

	h := logging.NewHandler(w, cfg.Format, noColor || !isTerminal(w))

	logger := slog.New(h)
	slog.SetDefault(logger)

	log.SetFlags(0)
	log.SetOutput(
		slog.NewLogLogger(
			slog.Default().Handler(),
			slog.LevelInfo,
		).Writer(),
	)

	return logging.New(logger, level)
}
