//go:build !unix

package stderr

import "os"

// Capture is a passthrough where fd redirection is unsupported.
type Capture struct {
	lines chan string
}

// Start returns a capture that never delivers lines.
func Start() (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

// Lines never delivers; it is closed after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop closes Lines.
func (c *Capture) Stop() {
	select {
	case <-c.lines:
	default:
		close(c.lines)
	}
}
