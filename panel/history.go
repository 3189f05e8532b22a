package panel

// history keeps the lines submitted through the prompt, newest last,
// with a recall cursor for stepping back through them.
type history struct {
	lines []string
	limit int
	pos   int // recall cursor, len(lines) means past the newest
}

func newHistory(limit int) *history {
	return &history{lines: make([]string, 0, limit), limit: limit}
}

// add records a submitted line. Blank lines and immediate repeats are
// skipped. Adding always parks the cursor past the newest entry.
func (h *history) add(line string) {
	if line != "" && (len(h.lines) == 0 || h.lines[len(h.lines)-1] != line) {
		h.lines = append(h.lines, line)
		if len(h.lines) > h.limit {
			h.lines = h.lines[len(h.lines)-h.limit:]
		}
	}
	h.pos = len(h.lines)
}

// prev steps back one line. Reports false at the oldest entry, where
// the cursor stays put.
func (h *history) prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.lines[h.pos], true
}

// next steps forward one line. Stepping past the newest entry returns
// an empty line to apply; false means the cursor was already there.
func (h *history) next() (string, bool) {
	if h.pos >= len(h.lines) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.lines) {
		return "", true
	}
	return h.lines[h.pos], true
}

// reset parks the cursor past the newest entry.
func (h *history) reset() { h.pos = len(h.lines) }
