// Package logging builds the process logger from the logging
// configuration section.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"partdex/internal/config"
)

// New returns a logger writing to stderr, honouring the configured level
// and format.
func New(cfg config.Logging) *log.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter returns a logger writing to w. Unknown levels fall back
// to info rather than failing, so logging never blocks a build.
func NewWithWriter(w io.Writer, cfg config.Logging) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	options := log.Options{Level: level}
	switch cfg.Format {
	case "json":
		options.Formatter = log.JSONFormatter
		options.ReportTimestamp = true
	case "logfmt":
		options.Formatter = log.LogfmtFormatter
		options.ReportTimestamp = true
	default:
		options.Formatter = log.TextFormatter
	}

	return log.NewWithOptions(w, options)
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *log.Logger {
	return log.New(io.Discard)
}
