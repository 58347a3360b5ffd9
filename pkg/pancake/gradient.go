package pancake

import (
	"math"
	"slices"

	"github.com/go-drift/pancake/pkg/graphics"
)

// ResolveGradient maps spec onto bounds, producing device-space start and end
// points and a stop table sorted by position. Stops with equal positions keep
// their original order. A nil spec resolves to nil: the caller falls back to
// its solid color.
//
// Angles must be within [0, 360] and unit-space points and stop positions
// within [0, 1]; out-of-range input is rejected rather than clamped.
func ResolveGradient(spec *GradientSpec, bounds graphics.Rect) (*graphics.LinearGradient, error) {
	if err := validateGradient(opResolveGradient, "Gradient", spec); err != nil {
		return nil, err
	}
	return resolveGradient(spec, bounds), nil
}

// resolveGradient assumes spec has been validated.
func resolveGradient(spec *GradientSpec, bounds graphics.Rect) *graphics.LinearGradient {
	if spec == nil {
		return nil
	}
	if spec.Mode == GradientModeAngle {
		start, end := angleGradientPoints(spec.AngleDegrees, bounds)
		return graphics.NewLinearGradient(start, end, []graphics.GradientStop{
			{Position: 0, Color: spec.StartColor},
			{Position: 1, Color: spec.EndColor},
		})
	}

	w, h := bounds.Width(), bounds.Height()
	start := graphics.Offset{X: bounds.Left + spec.StartPoint.X*w, Y: bounds.Top + spec.StartPoint.Y*h}
	end := graphics.Offset{X: bounds.Left + spec.EndPoint.X*w, Y: bounds.Top + spec.EndPoint.Y*h}
	stops := slices.Clone(spec.Stops)
	slices.SortStableFunc(stops, func(a, b graphics.GradientStop) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		default:
			return 0
		}
	})
	return &graphics.LinearGradient{Start: start, End: end, Stops: stops}
}

// angleGradientPoints is the legacy angle mapping. Each coordinate follows a
// sin² curve offset by a quarter turn from its neighbour, so the gradient
// axis sweeps continuously around the bounds as the angle goes 0 -> 360 and
// both endpoints stay on the bounds' edges.
func angleGradientPoints(angleDegrees float64, bounds graphics.Rect) (start, end graphics.Offset) {
	w, h := bounds.Width(), bounds.Height()
	t := angleDegrees / 360
	a := w * sinSquared(2*math.Pi*(t+0.75)/2)
	b := h * sinSquared(2*math.Pi*t/2)
	c := w * sinSquared(2*math.Pi*(t+0.25)/2)
	d := h * sinSquared(2*math.Pi*(t+0.5)/2)
	start = graphics.Offset{X: bounds.Left + w - a, Y: bounds.Top + b}
	end = graphics.Offset{X: bounds.Left + w - c, Y: bounds.Top + d}
	return start, end
}

func sinSquared(v float64) float64 {
	s := math.Sin(v)
	return s * s
}
