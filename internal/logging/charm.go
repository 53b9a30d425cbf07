package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// CharmOptions configures NewCharmLogger.
type CharmOptions struct {
	Writer io.Writer
	Level  string
	Prefix string
}

// NewCharmLogger returns a logger whose records are rendered by
// charmbracelet/log. Unknown levels fall back to info; a nil writer means
// stderr so log lines never mix with REPL output on stdout.
func NewCharmLogger(opts CharmOptions) *SlogLogger {
	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}

	lvl, err := log.ParseLevel(opts.Level)
	if err != nil {
		lvl = log.InfoLevel
	}

	h := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return NewSlogLogger(slog.New(h))
}
