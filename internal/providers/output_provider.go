package providers

import (
	"io"
	"os"
)

// NewOutputProvider returns the writer commands print their results to.
// Logs go to stderr so stdout stays pipeable.
func NewOutputProvider() io.Writer {
	return os.Stdout
}
