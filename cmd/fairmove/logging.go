package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// SetupLogger configures charmbracelet/log at level, or debug when asked.
func SetupLogger(w io.Writer, level log.Level, debug bool) *log.Logger {
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "fairmove",
	})
}
