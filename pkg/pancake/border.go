package pancake

import (
	"github.com/go-drift/pancake/pkg/errors"
	"github.com/go-drift/pancake/pkg/graphics"
)

// legacyDashGapFactor: every gap (odd-indexed) dash entry is multiplied by
// thickness * legacyDashGapFactor, matching the legacy renderers.
const legacyDashGapFactor = 0.5

// StrokeGeometry is the resolved placement of a border stroke.
type StrokeGeometry struct {
	// Outline is the path the stroke is centered on.
	Outline Outline
	// Width is the stroke width in pixels.
	Width float64
	// Pattern is the normalized dash pattern before gap scaling; nil when solid.
	Pattern []float64
	// DashArray is the dash array backends should use; nil when solid.
	DashArray []float64
}

// Dashed reports whether the stroke has a dash pattern.
func (g *StrokeGeometry) Dashed() bool {
	return g != nil && len(g.DashArray) > 0
}

// ResolveBorder computes where and how wide the border stroke is. outline is
// the shape's fill outline; when empty it is rebuilt from shape. elevated
// reports whether a shadow is active, which moves Inside strokes inward by
// half their width.
//
// A zero thickness or non-drawable shape yields nil geometry and no error.
func ResolveBorder(border BorderSpec, shape ShapeSpec, outline Outline, elevated bool) (*StrokeGeometry, error) {
	if err := validateShape(opResolveBorder, shape); err != nil {
		return nil, err
	}
	if err := validateBorder(opResolveBorder, &border); err != nil {
		return nil, err
	}
	if outline.IsEmpty() && shape.IsDrawable() {
		outline = buildOutline(shape.Bounds(), shape.Sides, shape.CornerRadius, shape.RotationOffsetDegrees)
	}
	return resolveBorder(border, shape, outline, elevated), nil
}

// resolveBorder assumes border and shape have been validated.
func resolveBorder(border BorderSpec, shape ShapeSpec, outline Outline, elevated bool) *StrokeGeometry {
	if border.Thickness == 0 || !shape.IsDrawable() {
		return nil
	}
	half := border.Thickness / 2
	strokeOutline := outline
	switch border.DrawingStyle {
	case DrawingStyleInside:
		// A border too thick to inset stays on the shape's own outline.
		if inset := shape.Bounds().Inset(half); elevated && !inset.IsEmpty() {
			strokeOutline = buildOutline(inset, shape.Sides, shape.CornerRadius, shape.RotationOffsetDegrees)
		}
	case DrawingStyleOutside:
		strokeOutline = buildOutline(shape.Bounds().Inset(-half), shape.Sides, shape.CornerRadius, shape.RotationOffsetDegrees)
	case DrawingStyleCentered:
	}

	// Already validated, so the error is always nil here.
	pattern, _ := normalizeDashPattern(opResolveBorder, border.DashPattern)
	return &StrokeGeometry{
		Outline:   strokeOutline,
		Width:     border.Thickness,
		Pattern:   pattern,
		DashArray: ScaleDashPattern(pattern, border.Thickness),
	}
}

// NormalizeDashPattern validates a dash pattern and converts it to pixels.
// An empty pattern means solid (nil). A single entry is repeated to form an
// equal on/off pair. Odd lengths of three or more, negative entries and
// patterns that are all zero are rejected.
func NormalizeDashPattern(pattern []int) ([]float64, error) {
	return normalizeDashPattern("pancake.NormalizeDashPattern", pattern)
}

func normalizeDashPattern(op string, pattern []int) ([]float64, error) {
	switch {
	case len(pattern) == 0:
		return nil, nil
	case len(pattern)%2 == 1 && len(pattern) >= 3:
		return nil, errors.InvalidSpec(op, "Border.DashPattern", pattern, "odd-length patterns must have a single entry")
	}
	var total int
	for _, v := range pattern {
		if v < 0 {
			return nil, errors.InvalidSpec(op, "Border.DashPattern", pattern, "entries must not be negative")
		}
		total += v
	}
	if total == 0 {
		return nil, errors.InvalidSpec(op, "Border.DashPattern", pattern, "pattern must have a positive length")
	}

	if len(pattern) == 1 {
		return []float64{float64(pattern[0]), float64(pattern[0])}, nil
	}
	out := make([]float64, len(pattern))
	for i, v := range pattern {
		out[i] = float64(v)
	}
	return out, nil
}

// ScaleDashPattern applies the legacy gap scaling: every odd-indexed (off)
// entry is multiplied by thickness * 0.5. On entries are unchanged.
func ScaleDashPattern(pattern []float64, thickness float64) []float64 {
	if len(pattern) == 0 {
		return nil
	}
	out := make([]float64, len(pattern))
	for i, v := range pattern {
		if i%2 == 1 {
			v *= thickness * legacyDashGapFactor
		}
		out[i] = v
	}
	return out
}

// strokeDash converts a geometry's dash array into a paint dash pattern.
func strokeDash(g *StrokeGeometry) *graphics.DashPattern {
	if !g.Dashed() {
		return nil
	}
	return &graphics.DashPattern{Intervals: append([]float64(nil), g.DashArray...)}
}
