package widget

import "github.com/drake/ledge/layout"

// Spacer holds open a fixed amount of space and draws nothing.
type Spacer struct {
	Base

	w, h int
}

// NewSpacer creates a Spacer wanting w by h cells. Negative extents
// clamp to zero.
func NewSpacer(w, h int) *Spacer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Spacer{w: w, h: h}
}

// Fit wants exactly the configured extents.
func (s *Spacer) Fit(_ *layout.Context, _, _ int) (int, int) {
	return s.w, s.h
}
