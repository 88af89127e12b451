package core

import "fmt"

// Color is an RGBA color with channels nominally in [0, 1].
// Alpha is display-only; values above 1 are tolerated and clamped on output.
type Color struct {
	R, G, B, A float32
}

// Predefined colors for arena entities.
var (
	ColorDefault = Color{}
	ColorWhite   = Color{R: 1, G: 1, B: 1, A: 1}
	ColorGray    = Color{R: 0.55, G: 0.55, B: 0.55, A: 1}
)

// IsDefault reports whether c is the zero color (terminal default).
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Hex returns the color as "#rrggbb" for true-color terminals.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
