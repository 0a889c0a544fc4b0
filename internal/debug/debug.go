// Package debug provides env-gated diagnostics for the surfaces.
package debug

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

// Enabled returns true if debug mode is active (LIVEVIEW_DEBUG=1).
func Enabled() bool {
	return os.Getenv("LIVEVIEW_DEBUG") == "1"
}

// Logf writes a diagnostic line when debug mode is active.
func Logf(format string, args ...any) {
	if !Enabled() {
		return
	}
	logger.Printf("[liveview] "+format, args...)
}
