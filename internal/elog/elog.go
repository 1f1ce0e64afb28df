// Package elog provides the structured logger used at the non-pure
// boundary of this module: the CLI frontend.
// The crc and profile packages never import it — they are pure functions
// over caller-owned buffers and a log call has no business on that path.
package elog

import (
	"os"

	"github.com/charmbracelet/log"
)

// New builds a logger tagged with component, writing to stderr at the
// standard charmbracelet/log format used across the component.
func New(component string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	return logger.With("component", component)
}
