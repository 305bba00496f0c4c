package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates the application logger writing to w. Verbose enables
// debug messages.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "stevens",
	})
}
