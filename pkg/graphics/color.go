package graphics

import "math"

// Color is a non-premultiplied color packed as 0xAARRGGBB.
type Color uint32

// Named colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)

// RGBA8 packs four 0-255 channels into a Color.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Bytes unpacks c into its 0-255 channels.
func (c Color) Bytes() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBAF returns the channels scaled to [0, 1].
func (c Color) RGBAF() (r, g, b, a float64) {
	r8, g8, b8, a8 := c.Bytes()
	return float64(r8) / 255, float64(g8) / 255, float64(b8) / 255, float64(a8) / 255
}

// Opaque reports whether the alpha channel is 0xFF.
func (c Color) Opaque() bool {
	return c>>24 == 0xFF
}

// WithOpacity scales the alpha channel by opacity, clamped to [0, 1].
func (c Color) WithOpacity(opacity float64) Color {
	r, g, b, a := c.Bytes()
	opacity = math.Max(0, math.Min(1, opacity))
	return RGBA8(r, g, b, uint8(math.Round(float64(a)*opacity)))
}
