// Package text provides display-width helpers for styled terminal
// strings.
package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	var out strings.Builder
	out.Grow(len(s))
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			// Sequences end on the first alphabetic final byte.
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// Width returns the number of terminal cells s occupies, ignoring ANSI
// escape sequences and counting East Asian wide runes as two.
func Width(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
