// Package logger provides verbose logging for the reviewbundle commands.
// Messages are dropped unless verbose mode is enabled with --verbose,
// in which case they are written to stderr so stdout stays clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput redirects verbose logs and returns the previous writer.
// A nil writer restores os.Stderr.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	if w == nil {
		w = os.Stderr
	}
	output = w
	return prev
}

func printf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
}

// Debug logs per-source detail.
func Debug(format string, args ...any) { printf("DEBUG", format, args...) }

// Info logs build milestones.
func Info(format string, args ...any) { printf("INFO", format, args...) }

// Warn logs recoverable oddities.
func Warn(format string, args ...any) { printf("WARN", format, args...) }

// Section prints a section header, one per bundle built.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
