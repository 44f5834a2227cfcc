// Package console provides the shared process logger.
package console

import (
	"fmt"
	"io"
	"os"
)

// Console is a small leveled logger writing to a single destination.
type Console struct {
	// DebugLevel enables Debug output when > 0.
	DebugLevel int

	out io.Writer
}

// Logger is the process-wide logger instance.
var Logger = &Console{out: os.Stdout}

// SetOutput redirects log output, e.g. to io.Discard in quiet mode.
func (c *Console) SetOutput(w io.Writer) {
	c.out = w
}

// Info logs an informational message.
func (c *Console) Info(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Debug logs a message only when debug output is enabled.
func (c *Console) Debug(format string, args ...interface{}) {
	if c.DebugLevel <= 0 {
		return
	}
	fmt.Fprintf(c.out, "DEBUG: "+format+"\n", args...)
}
