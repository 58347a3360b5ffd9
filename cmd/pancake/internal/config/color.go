package config

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/pancake/pkg/graphics"
)

// ParseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA". The name
// "transparent" is also accepted.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return graphics.ColorTransparent, nil
	}
	alpha := uint8(0xFF)
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return graphics.RGBA8(r, g, b, alpha), nil
}

// FormatColor returns c as "#RRGGBB", or "#RRGGBBAA" when it is not opaque.
func FormatColor(c graphics.Color) string {
	r, g, b, _ := c.RGBAF()
	hex := colorful.Color{R: r, G: g, B: b}.Hex()
	if c.Opaque() {
		return strings.ToUpper(hex)
	}
	_, _, _, a := c.Bytes()
	return strings.ToUpper(fmt.Sprintf("%s%02x", hex, a))
}
