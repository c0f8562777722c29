package logger

import (
	"log"
	"os"
)

// New returns a basic stderr logger for CLI diagnostics; reports for the
// user go to stdout, never through here.
func New() *log.Logger {
	return log.New(os.Stderr, "", 0)
}
