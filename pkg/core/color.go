package core

import "image/color"

// Color is a linear RGB triple. Float colors live in [0,1]; byte colors in [0,255].
type Color = Vec3

var (
	Black = Color{X: 0, Y: 0, Z: 0}
	White = Color{X: 1, Y: 1, Z: 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{X: r, Y: g, Z: b}
}

// ToRGBA clamps each channel to [0,1] and truncates it to a byte
func ToRGBA(c Color) color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

// ColorFromRGBA8 widens byte channels to floats by dividing by 255
func ColorFromRGBA8(r, g, b uint8) Color {
	return Color{
		X: float64(r) / 255.0,
		Y: float64(g) / 255.0,
		Z: float64(b) / 255.0,
	}
}
