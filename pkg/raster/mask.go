package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/pancake/pkg/graphics"
)

// rasterize returns the coverage of polys over bounds. Bounds must start at
// the origin. Overlapping polygons of the same winding saturate rather than
// cancel, so stroke pieces can be emitted independently.
func rasterize(z *vector.Rasterizer, bounds image.Rectangle, polys [][]graphics.Offset) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if bounds.Empty() {
		return mask
	}
	z.Reset(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src
	drawn := false
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, pt := range poly[1:] {
			z.LineTo(float32(pt.X), float32(pt.Y))
		}
		z.ClosePath()
		drawn = true
	}
	if drawn {
		z.Draw(mask, bounds, image.Opaque, image.Point{})
	}
	return mask
}

// intersectMasks multiplies two masks of identical bounds.
func intersectMasks(a, b *image.Alpha) *image.Alpha {
	out := image.NewAlpha(a.Rect)
	for i := range out.Pix {
		out.Pix[i] = uint8((uint32(a.Pix[i])*uint32(b.Pix[i]) + 127) / 255)
	}
	return out
}

// boxRadius returns the radius of the box filter that, applied three times,
// approximates a gaussian of the given sigma.
func boxRadius(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	w := math.Sqrt(4*sigma*sigma + 1)
	return int(math.Round((w - 1) / 2))
}

// blurMask approximates a gaussian blur with three box passes in each
// direction. Pixels outside the mask count as empty.
func blurMask(mask *image.Alpha, sigma float64) {
	r := boxRadius(sigma)
	if r < 1 {
		return
	}
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	buf := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf[y*w+x] = float64(mask.Pix[y*mask.Stride+x])
		}
	}
	tmp := make([]float64, w*h)
	for pass := 0; pass < 3; pass++ {
		boxPass(buf, tmp, w, h, r, 1, w)
		boxPass(tmp, buf, h, w, r, w, 1)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := math.Round(buf[y*w+x])
			mask.Pix[y*mask.Stride+x] = uint8(math.Max(0, math.Min(255, v)))
		}
	}
}

// boxPass runs a moving average of width 2r+1 along lines of length n.
// step is the distance between neighbours on a line and lineStep between
// the starts of consecutive lines.
func boxPass(src, dst []float64, n, lines, r, step, lineStep int) {
	inv := 1 / float64(2*r+1)
	for line := 0; line < lines; line++ {
		base := line * lineStep
		var sum float64
		for i := 0; i <= r && i < n; i++ {
			sum += src[base+i*step]
		}
		for i := 0; i < n; i++ {
			dst[base+i*step] = sum * inv
			if in := i + r + 1; in < n {
				sum += src[base+in*step]
			}
			if out := i - r; out >= 0 {
				sum -= src[base+out*step]
			}
		}
	}
}
