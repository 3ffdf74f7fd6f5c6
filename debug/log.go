package debug

import (
	"fmt"
	"os"
)

// Logf writes a debug line to stderr.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
