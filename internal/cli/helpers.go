package cli

import (
	"fmt"
	"os"
)

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...))
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Printf("ℹ %s\n", fmt.Sprintf(format, args...))
	}
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// Global flags (will be set from cmd package)
var quiet bool

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q bool) {
	quiet = q
}
