// Package render provides text fitting helpers for fixed-width terminal cells.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters from tag text so a bad tag cannot break
// the layout. Invalid UTF-8 becomes U+FFFD.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == ' ':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, strings.ToValidUTF8(s, "�"))
}

// Truncate shortens s to at most width cells, ending in "…" when cut.
// Wide characters (CJK, emoji) count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), width, "…")
}

// Fit truncates s and pads it with spaces to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row places left and right on one line of exactly width cells, keeping at
// least one space between them. Left is truncated first.
func Row(left, right string, width int) string {
	rw := lipgloss.Width(right)
	lw := lipgloss.Width(left)
	if lw+rw+1 > width {
		left = Truncate(left, max(width-rw-1, 0))
		lw = lipgloss.Width(left)
	}
	gap := max(width-lw-rw, 1)
	return left + strings.Repeat(" ", gap) + right
}
