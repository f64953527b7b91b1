// Package xlog provides a minimal logging wrapper used across the module
// for coarse, operation-boundary reporting. It deliberately avoids a
// structured logging framework in favor of the standard library "log".
package xlog

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	std     = log.New(os.Stderr, "", log.LstdFlags)
	enabled = true
)

// SetOutput redirects all package-level logging to w. Tests use this to
// capture output instead of polluting stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
}

// SetEnabled toggles logging globally. Hot loops (decimator main loop,
// voxel traversal) never call into this package at all, so this is only
// useful for silencing the coarse boundary logs in tests.
func SetEnabled(v bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = v
}

// Printf logs a formatted message if logging is enabled.
func Printf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	std.Printf(format, args...)
}
