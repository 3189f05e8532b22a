package style

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Blend mixes two hex colors in Luv space. t runs from 0 (all from)
// to 1 (all to) and is clamped into that range. Unparseable colors
// fall back to the from color unmixed.
func Blend(from, to string, t float64) lipgloss.Color {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		return lipgloss.Color(from)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(a.BlendLuv(b, t).Clamped().Hex())
}
