// Package render provides text layout helpers for card content.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Sanitize removes control characters (except tab/space) and replaces
// invalid UTF-8 with nothing, so content files cannot break the terminal.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth using a single-cell ellipsis.
// Uses runewidth for proper handling of wide characters (CJK, emoji).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Center pads s on both sides to width. Text wider than width is truncated.
func Center(s string, width int) string {
	s = Truncate(s, width)
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Wrap word-wraps s to width and returns at most maxLines lines.
// The last kept line gets an ellipsis when text was dropped.
// maxLines <= 0 means no limit.
func Wrap(s string, width, maxLines int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := wordwrap.String(Sanitize(s), width)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		// wordwrap never breaks single words longer than width
		lines[i] = Truncate(strings.TrimRight(line, " "), width)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		if runewidth.StringWidth(last) >= width {
			last = Truncate(last, width-1)
		}
		lines[maxLines-1] = last + "…"
	}
	return lines
}

// EmptyLine creates an empty line (spaces) of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
