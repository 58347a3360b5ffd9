package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/go-drift/pancake/pkg/graphics"
)

// state is the part of the canvas Save and Restore manage.
type state struct {
	dx, dy float64
	// clip is nil when drawing is unclipped. Masks are never modified after
	// they are installed, so saved states can share them.
	clip *image.Alpha
}

// Canvas is a software graphics.Canvas that draws into an RGBA image.
// Only translation is supported as a transform.
type Canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	state state
	stack []state
}

var _ graphics.Canvas = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Save pushes the current translation and clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recent Save. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		Logger().Warn("raster: restore without matching save")
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

// ClipPath intersects the clip with the interior of path. The convex hint is
// not needed by a coverage-mask clip.
func (c *Canvas) ClipPath(path *graphics.Path, convex bool) {
	mask := rasterize(c.z, c.img.Rect, fillPolygons(path, c.state.dx, c.state.dy))
	if c.state.clip != nil {
		mask = intersectMasks(mask, c.state.clip)
	}
	c.state.clip = mask
}

// Clear replaces every pixel with color, ignoring the clip.
func (c *Canvas) Clear(color graphics.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(toNRGBA(color)), image.Point{}, draw.Src)
}

// DrawPath fills or strokes path. Strokes use round joins and butt ends
// whatever paint.StrokeJoin says.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path.IsEmpty() {
		return
	}
	var polys [][]graphics.Offset
	if paint.Style == graphics.PaintStyleStroke {
		polys = strokePolygons(path, paint.StrokeWidth, paint.Dash, c.state.dx, c.state.dy)
	} else {
		polys = fillPolygons(path, c.state.dx, c.state.dy)
	}
	var src image.Image = image.NewUniform(toNRGBA(paint.Color))
	if paint.Gradient.IsValid() {
		src = newGradientImage(paint.Gradient, c.state.dx, c.state.dy)
	}
	c.composite(rasterize(c.z, c.img.Rect, polys), src)
}

// DrawPathShadow paints a blurred silhouette of path in shadow.Color.
func (c *Canvas) DrawPathShadow(path *graphics.Path, shadow graphics.BoxShadow) {
	if path.IsEmpty() {
		return
	}
	dx := c.state.dx + shadow.Offset.X
	dy := c.state.dy + shadow.Offset.Y
	mask := rasterize(c.z, c.img.Rect, fillPolygons(path, dx, dy))
	blurMask(mask, shadow.Sigma())
	c.composite(mask, image.NewUniform(toNRGBA(shadow.Color)))
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() graphics.Size {
	return graphics.Size{Width: float64(c.img.Rect.Dx()), Height: float64(c.img.Rect.Dy())}
}

func (c *Canvas) composite(mask *image.Alpha, src image.Image) {
	if c.state.clip != nil {
		mask = intersectMasks(mask, c.state.clip)
	}
	draw.DrawMask(c.img, c.img.Rect, src, image.Point{}, mask, image.Point{}, draw.Over)
}
