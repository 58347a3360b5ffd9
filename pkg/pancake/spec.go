package pancake

import (
	"fmt"

	"github.com/go-drift/pancake/pkg/graphics"
)

// CornerRadius holds one radius per corner. All four are used when the shape
// has four sides; any other side count uses TopLeft for every corner.
type CornerRadius struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadius returns a CornerRadius with all four corners set to r.
func UniformRadius(r float64) CornerRadius {
	return CornerRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsUniform reports whether all four corners have the same radius.
func (c CornerRadius) IsUniform() bool {
	return c.TopLeft == c.TopRight && c.TopRight == c.BottomRight && c.BottomRight == c.BottomLeft
}

// ShapeSpec describes the outline of the shape in device units.
type ShapeSpec struct {
	Width  float64
	Height float64
	// Sides is 4 for a rounded rectangle; any other value >= 3 is a regular polygon.
	Sides        int
	CornerRadius CornerRadius
	// RotationOffsetDegrees rotates polygon vertices; rectangles ignore it.
	RotationOffsetDegrees float64
}

// Rect returns a ShapeSpec for a rounded rectangle.
func Rect(width, height float64, radius CornerRadius) ShapeSpec {
	return ShapeSpec{Width: width, Height: height, Sides: 4, CornerRadius: radius}
}

// Polygon returns a ShapeSpec for a regular polygon with uniformly rounded corners.
func Polygon(width, height float64, sides int, radius, rotationDegrees float64) ShapeSpec {
	return ShapeSpec{
		Width:                 width,
		Height:                height,
		Sides:                 sides,
		CornerRadius:          UniformRadius(radius),
		RotationOffsetDegrees: rotationDegrees,
	}
}

// Bounds returns the shape's layout rectangle, anchored at the origin.
func (s ShapeSpec) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, s.Width, s.Height)
}

// IsDrawable reports whether the shape has positive area. Layout passes
// routinely produce zero-sized bounds for a frame; those draw nothing.
func (s ShapeSpec) IsDrawable() bool {
	return s.Width > 0 && s.Height > 0
}

// GradientMode selects how a gradient's direction is specified.
type GradientMode int

const (
	// GradientModePoints uses explicit unit-space start and end points and
	// an arbitrary stop table.
	GradientModePoints GradientMode = iota
	// GradientModeAngle is the legacy two-color gradient rotated by an angle.
	GradientModeAngle
)

// String returns a human-readable representation of the gradient mode.
func (m GradientMode) String() string {
	switch m {
	case GradientModePoints:
		return "points"
	case GradientModeAngle:
		return "angle"
	default:
		return fmt.Sprintf("GradientMode(%d)", int(m))
	}
}

// GradientStop is an (offset, color) pair along the gradient ramp.
// Position is the offset in [0, 1].
type GradientStop = graphics.GradientStop

// GradientSpec describes a linear gradient either by angle (legacy) or by
// explicit unit-space points.
type GradientSpec struct {
	Mode GradientMode

	// Angle mode.
	AngleDegrees float64
	StartColor   graphics.Color
	EndColor     graphics.Color

	// Points mode. Coordinates are fractions of the bounds in [0, 1].
	StartPoint graphics.Offset
	EndPoint   graphics.Offset
	Stops      []GradientStop
}

// AngleGradient returns a legacy two-color gradient rotated by angleDegrees.
func AngleGradient(angleDegrees float64, start, end graphics.Color) *GradientSpec {
	return &GradientSpec{
		Mode:         GradientModeAngle,
		AngleDegrees: angleDegrees,
		StartColor:   start,
		EndColor:     end,
	}
}

// PointGradient returns an explicit-point gradient with the given stops.
func PointGradient(start, end graphics.Offset, stops ...GradientStop) *GradientSpec {
	return &GradientSpec{
		Mode:       GradientModePoints,
		StartPoint: start,
		EndPoint:   end,
		Stops:      append([]GradientStop(nil), stops...),
	}
}

func (g *GradientSpec) clone() *GradientSpec {
	if g == nil {
		return nil
	}
	c := *g
	c.Stops = append([]GradientStop(nil), g.Stops...)
	return &c
}

// FillSpec describes the shape's background. A non-nil Gradient wins over Color.
type FillSpec struct {
	Color    graphics.Color
	Gradient *GradientSpec
}

// DrawingStyle places a stroke relative to the outline.
type DrawingStyle int

const (
	// DrawingStyleInside keeps the stroke within the fill.
	DrawingStyleInside DrawingStyle = iota
	// DrawingStyleOutside moves the stroke outside the fill.
	DrawingStyleOutside
	// DrawingStyleCentered straddles the outline.
	DrawingStyleCentered
)

// String returns a human-readable representation of the drawing style.
func (s DrawingStyle) String() string {
	switch s {
	case DrawingStyleInside:
		return "inside"
	case DrawingStyleOutside:
		return "outside"
	case DrawingStyleCentered:
		return "centered"
	default:
		return fmt.Sprintf("DrawingStyle(%d)", int(s))
	}
}

// ParseDrawingStyle converts "inside", "outside" or "centered" to a DrawingStyle.
func ParseDrawingStyle(s string) (DrawingStyle, error) {
	switch s {
	case "inside", "":
		return DrawingStyleInside, nil
	case "outside":
		return DrawingStyleOutside, nil
	case "centered", "center":
		return DrawingStyleCentered, nil
	default:
		return 0, fmt.Errorf("unknown drawing style %q", s)
	}
}

// BorderSpec describes the stroke drawn around the shape.
type BorderSpec struct {
	Thickness    float64
	Color        graphics.Color
	DrawingStyle DrawingStyle
	// DashPattern alternates on/off lengths. Empty means solid.
	DashPattern []int
	// Gradient, if set, strokes with a gradient instead of Color.
	Gradient *GradientSpec
}

func (b *BorderSpec) clone() *BorderSpec {
	if b == nil {
		return nil
	}
	c := *b
	c.DashPattern = append([]int(nil), b.DashPattern...)
	c.Gradient = b.Gradient.clone()
	return &c
}

// ShadowSpec describes the elevation shadow. Its presence also marks the
// shape as elevated, which changes how Inside borders are placed.
type ShadowSpec struct {
	BlurRadius float64
	Opacity    float64
	Color      graphics.Color
	Offset     graphics.Offset
}

func (s *ShadowSpec) clone() *ShadowSpec {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
