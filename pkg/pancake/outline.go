package pancake

import (
	"math"

	"github.com/go-drift/pancake/pkg/graphics"
)

// Outline is a closed shape boundary together with facts backends need
// about it.
type Outline struct {
	Path   *graphics.Path
	Bounds graphics.Rect
	// Convex is true when the outline never turns back on itself. Only convex
	// outlines may use hardware outline clipping.
	Convex bool
}

// IsEmpty reports whether the outline has nothing to draw.
func (o Outline) IsEmpty() bool {
	return o.Path.IsEmpty()
}

// BuildOutline returns the closed outline of shape. Four-sided shapes are
// rounded rectangles with independent corner radii; any other side count is
// a regular polygon whose corners are all rounded by CornerRadius.TopLeft.
// Non-positive bounds yield an empty outline and no error.
func BuildOutline(shape ShapeSpec) (Outline, error) {
	if err := validateShape(opBuildOutline, shape); err != nil {
		return Outline{}, err
	}
	if !shape.IsDrawable() {
		return Outline{}, nil
	}
	return buildOutline(shape.Bounds(), shape.Sides, shape.CornerRadius, shape.RotationOffsetDegrees), nil
}

// buildOutline is shared by the fill, border, shadow and clip paths so that
// all of them trace the same silhouette.
func buildOutline(rect graphics.Rect, sides int, radii CornerRadius, rotationDegrees float64) Outline {
	if rect.IsEmpty() {
		return Outline{}
	}
	path := graphics.NewPath()
	if sides == 4 {
		appendRoundedRect(path, rect, fitRadii(radii, rect))
	} else {
		appendRoundedPolygon(path, rect, sides, radii.TopLeft, rotationDegrees)
	}
	return Outline{
		Path:   path,
		Bounds: path.Bounds(),
		Convex: path.IsConvex(),
	}
}

// fitRadii scales all radii down by the same factor when adjacent corners
// would overlap along an edge.
func fitRadii(r CornerRadius, rect graphics.Rect) CornerRadius {
	w, h := rect.Width(), rect.Height()
	scale := 1.0
	limit := func(length, a, b float64) {
		if sum := a + b; sum > length {
			scale = math.Min(scale, length/sum)
		}
	}
	limit(w, r.TopLeft, r.TopRight)
	limit(w, r.BottomLeft, r.BottomRight)
	limit(h, r.TopLeft, r.BottomLeft)
	limit(h, r.TopRight, r.BottomRight)
	if scale == 1 {
		return r
	}
	return CornerRadius{
		TopLeft:     r.TopLeft * scale,
		TopRight:    r.TopRight * scale,
		BottomRight: r.BottomRight * scale,
		BottomLeft:  r.BottomLeft * scale,
	}
}

// outlineWriter appends to a path while tracking the current point so that
// zero-length edges are not emitted.
type outlineWriter struct {
	path *graphics.Path
	cur  graphics.Offset
}

func (w *outlineWriter) moveTo(pt graphics.Offset) {
	w.path.MoveTo(pt.X, pt.Y)
	w.cur = pt
}

func (w *outlineWriter) lineTo(pt graphics.Offset) {
	if pt == w.cur {
		return
	}
	w.path.LineTo(pt.X, pt.Y)
	w.cur = pt
}

// edgeTo starts the outline at pt when first is set, otherwise draws a
// straight edge to it.
func (w *outlineWriter) edgeTo(first bool, pt graphics.Offset) {
	if first {
		w.moveTo(pt)
		return
	}
	w.lineTo(pt)
}

// corner draws a clockwise quarter arc starting at startAngle.
func (w *outlineWriter) corner(center graphics.Offset, radius, startAngle float64) {
	if radius <= 0 {
		return
	}
	w.path.ArcTo(center.X, center.Y, radius, startAngle, math.Pi/2)
	w.cur = center.Polar(radius, startAngle+math.Pi/2)
}

// appendRoundedRect traces the rectangle clockwise (y-down), starting where
// the top-left arc ends.
func appendRoundedRect(path *graphics.Path, rect graphics.Rect, r CornerRadius) {
	l, t, rt, b := rect.Left, rect.Top, rect.Right, rect.Bottom
	w := &outlineWriter{path: path}

	w.moveTo(graphics.Offset{X: l + r.TopLeft, Y: t})
	w.lineTo(graphics.Offset{X: rt - r.TopRight, Y: t})
	w.corner(graphics.Offset{X: rt - r.TopRight, Y: t + r.TopRight}, r.TopRight, -math.Pi/2)
	w.lineTo(graphics.Offset{X: rt, Y: b - r.BottomRight})
	w.corner(graphics.Offset{X: rt - r.BottomRight, Y: b - r.BottomRight}, r.BottomRight, 0)
	w.lineTo(graphics.Offset{X: l + r.BottomLeft, Y: b})
	w.corner(graphics.Offset{X: l + r.BottomLeft, Y: b - r.BottomLeft}, r.BottomLeft, math.Pi/2)
	if r.TopLeft > 0 {
		w.lineTo(graphics.Offset{X: l, Y: t + r.TopLeft})
		w.corner(graphics.Offset{X: l + r.TopLeft, Y: t + r.TopLeft}, r.TopLeft, math.Pi)
	}
	path.Close()
}

// appendRoundedPolygon traces a regular polygon inscribed in rect. Each
// corner is a quadratic curve whose control point is the sharp vertex.
func appendRoundedPolygon(path *graphics.Path, rect graphics.Rect, sides int, cornerRadius, rotationDegrees float64) {
	theta := 2 * math.Pi / float64(sides)
	apothemBase := (math.Min(rect.Width(), rect.Height()) - cornerRadius) / 2
	center := rect.Center()
	radius := apothemBase + cornerRadius - cornerRadius*math.Cos(theta)/2
	angle := rotationDegrees * math.Pi / 180

	w := &outlineWriter{path: path}
	for i := 0; i < sides; i++ {
		tip := center.Polar(radius, angle)
		if cornerRadius == 0 {
			w.edgeTo(i == 0, tip)
		} else {
			cornerCenter := center.Polar(radius-cornerRadius, angle)
			w.edgeTo(i == 0, cornerCenter.Polar(cornerRadius, angle-theta))
			end := cornerCenter.Polar(cornerRadius, angle+theta)
			path.QuadTo(tip.X, tip.Y, end.X, end.Y)
			w.cur = end
		}
		angle += theta
	}
	path.Close()
}
