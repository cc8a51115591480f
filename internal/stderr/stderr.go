//go:build unix

// Package stderr captures output that C libraries (ALSA through the audio
// backend) write straight to file descriptor 2, so it cannot corrupt the
// terminal UI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

const bufferSize = 100

// Capture redirects fd 2 into a pipe and delivers its lines on Lines.
type Capture struct {
	orig  int
	read  *os.File
	write *os.File
	lines chan string
	wg    sync.WaitGroup
	once  sync.Once
}

// Start begins capturing stderr. Call it before the audio backend is
// initialized. On error the process keeps writing to the real stderr.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, errors.Wrap(err, "create stderr pipe")
	}

	fd := int(os.Stderr.Fd())
	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, errors.Wrap(err, "dup stderr")
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, errors.Wrap(err, "redirect stderr")
	}

	c := &Capture{orig: orig, read: r, write: w, lines: make(chan string, bufferSize)}
	c.wg.Add(1)
	go c.pump()
	return c, nil
}

func (c *Capture) pump() {
	defer c.wg.Done()
	defer close(c.lines)
	scanner := bufio.NewScanner(c.read)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// full; drop rather than block the writer
		}
	}
}

// Lines delivers captured lines. It is closed after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to the real stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = unix.Write(c.orig, []byte(msg))
}

// Stop restores the original stderr and waits for the reader to drain.
func (c *Capture) Stop() {
	c.once.Do(func() {
		_ = unix.Dup2(c.orig, int(os.Stderr.Fd()))
		_ = unix.Close(c.orig)
		c.write.Close()
		c.wg.Wait()
		c.read.Close()
	})
}
