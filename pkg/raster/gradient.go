package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/pancake/pkg/graphics"
)

// toNRGBA converts an ARGB color to a non-premultiplied stdlib color.
func toNRGBA(c graphics.Color) color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// gradientStop is a stop with its color split into RGB and alpha, the form
// colorful blends in.
type gradientStop struct {
	pos   float64
	rgb   colorful.Color
	alpha float64
}

// gradientImage is an unbounded image.Image that evaluates a linear gradient
// at each pixel center. Pixel (x, y) samples the gradient at
// (x+0.5-dx, y+0.5-dy) so the gradient follows the canvas translation.
type gradientImage struct {
	start, end graphics.Offset
	dx, dy     float64
	stops      []gradientStop
}

func newGradientImage(g *graphics.LinearGradient, dx, dy float64) *gradientImage {
	img := &gradientImage{start: g.Start, end: g.End, dx: dx, dy: dy}
	for _, s := range g.Stops {
		r, gr, b, a := s.Color.RGBAF()
		img.stops = append(img.stops, gradientStop{
			pos:   s.Position,
			rgb:   colorful.Color{R: r, G: gr, B: b},
			alpha: a,
		})
	}
	return img
}

func (g *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (g *gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (g *gradientImage) At(x, y int) color.Color {
	p := graphics.Offset{X: float64(x) + 0.5 - g.dx, Y: float64(y) + 0.5 - g.dy}
	axis := g.end.Sub(g.start)
	var t float64
	if lenSq := axis.X*axis.X + axis.Y*axis.Y; lenSq > 1e-12 {
		v := p.Sub(g.start)
		t = (v.X*axis.X + v.Y*axis.Y) / lenSq
	}
	return g.colorAt(t)
}

// colorAt returns the color at offset t along the axis. Offsets outside the
// stop range take the nearest end stop's color.
func (g *gradientImage) colorAt(t float64) color.NRGBA {
	stops := g.stops
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].pos {
		return stopColor(stops[0].rgb, stops[0].alpha)
	}
	last := stops[len(stops)-1]
	if t >= last.pos {
		return stopColor(last.rgb, last.alpha)
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.pos {
			continue
		}
		span := b.pos - a.pos
		if span <= 0 {
			return stopColor(b.rgb, b.alpha)
		}
		u := (t - a.pos) / span
		return stopColor(a.rgb.BlendRgb(b.rgb, u), a.alpha+(b.alpha-a.alpha)*u)
	}
	return stopColor(last.rgb, last.alpha)
}

func stopColor(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))}
}
