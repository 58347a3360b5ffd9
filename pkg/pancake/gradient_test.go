package pancake

import (
	"testing"

	"github.com/go-drift/pancake/pkg/errors"
	"github.com/go-drift/pancake/pkg/graphics"
)

func offsetsApprox(a, b graphics.Offset, tol float64) bool {
	return approx(a.X, b.X, tol) && approx(a.Y, b.Y, tol)
}

func TestResolveGradient_AngleRegressionPoints(t *testing.T) {
	tests := []struct {
		name       string
		angle      float64
		bounds     graphics.Rect
		start, end graphics.Offset
	}{
		{
			name:   "zero degrees runs top to bottom",
			angle:  0,
			bounds: graphics.RectFromLTWH(0, 0, 200, 200),
			start:  graphics.Offset{X: 100, Y: 0},
			end:    graphics.Offset{X: 100, Y: 200},
		},
		{
			name:   "ninety degrees runs right to left",
			angle:  90,
			bounds: graphics.RectFromLTWH(0, 0, 200, 200),
			start:  graphics.Offset{X: 200, Y: 100},
			end:    graphics.Offset{X: 0, Y: 100},
		},
		{
			name:   "full turn matches zero",
			angle:  360,
			bounds: graphics.RectFromLTWH(0, 0, 200, 200),
			start:  graphics.Offset{X: 100, Y: 0},
			end:    graphics.Offset{X: 100, Y: 200},
		},
		{
			name:   "forty-five degrees on a wide box",
			angle:  45,
			bounds: graphics.RectFromLTWH(0, 0, 200, 100),
			start:  graphics.Offset{X: 170.71068, Y: 14.64466},
			end:    graphics.Offset{X: 29.28932, Y: 85.35534},
		},
		{
			name:   "offset bounds shift both points",
			angle:  90,
			bounds: graphics.RectFromLTWH(10, 20, 200, 200),
			start:  graphics.Offset{X: 210, Y: 120},
			end:    graphics.Offset{X: 10, Y: 120},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ResolveGradient(AngleGradient(tt.angle, graphics.ColorRed, graphics.ColorBlue), tt.bounds)
			if err != nil {
				t.Fatalf("ResolveGradient: %v", err)
			}
			if !offsetsApprox(g.Start, tt.start, 1e-4) || !offsetsApprox(g.End, tt.end, 1e-4) {
				t.Errorf("got %+v -> %+v, want %+v -> %+v", g.Start, g.End, tt.start, tt.end)
			}
			if len(g.Stops) != 2 || g.Stops[0] != (GradientStop{Position: 0, Color: graphics.ColorRed}) || g.Stops[1] != (GradientStop{Position: 1, Color: graphics.ColorBlue}) {
				t.Errorf("stops = %v, want red at 0 and blue at 1", g.Stops)
			}
		})
	}
}

func TestResolveGradient_PointsMapOntoBounds(t *testing.T) {
	spec := PointGradient(graphics.Offset{X: 0, Y: 0.5}, graphics.Offset{X: 1, Y: 0.5},
		GradientStop{Position: 0, Color: graphics.ColorRed},
		GradientStop{Position: 1, Color: graphics.ColorBlue},
	)
	g, err := ResolveGradient(spec, graphics.RectFromLTWH(10, 10, 100, 50))
	if err != nil {
		t.Fatalf("ResolveGradient: %v", err)
	}
	if g.Start != (graphics.Offset{X: 10, Y: 35}) || g.End != (graphics.Offset{X: 110, Y: 35}) {
		t.Errorf("got %+v -> %+v, want (10,35) -> (110,35)", g.Start, g.End)
	}
}

func TestResolveGradient_StableStopOrder(t *testing.T) {
	spec := PointGradient(graphics.Offset{}, graphics.Offset{X: 1, Y: 1},
		GradientStop{Position: 0.5, Color: graphics.ColorRed},
		GradientStop{Position: 0, Color: graphics.ColorBlue},
		GradientStop{Position: 0.5, Color: graphics.ColorGreen},
		GradientStop{Position: 1, Color: graphics.ColorWhite},
	)
	g, err := ResolveGradient(spec, graphics.RectFromLTWH(0, 0, 10, 10))
	if err != nil {
		t.Fatalf("ResolveGradient: %v", err)
	}
	want := []graphics.Color{graphics.ColorBlue, graphics.ColorRed, graphics.ColorGreen, graphics.ColorWhite}
	for i, stop := range g.Stops {
		if stop.Color != want[i] {
			t.Errorf("stop %d color = %#x, want %#x", i, uint32(stop.Color), uint32(want[i]))
		}
	}
	// The caller's stop table must not be reordered.
	if spec.Stops[0].Color != graphics.ColorRed {
		t.Error("ResolveGradient modified its input")
	}
}

func TestResolveGradient_NilIsSolid(t *testing.T) {
	g, err := ResolveGradient(nil, graphics.RectFromLTWH(0, 0, 10, 10))
	if err != nil || g != nil {
		t.Errorf("ResolveGradient(nil) = %v, %v; want nil, nil", g, err)
	}
}

func TestResolveGradient_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		spec  *GradientSpec
		field string
	}{
		{"negative angle", AngleGradient(-1, 0, 0), "Gradient.AngleDegrees"},
		{"angle past a turn", AngleGradient(361, 0, 0), "Gradient.AngleDegrees"},
		{"start point outside unit square", PointGradient(graphics.Offset{X: -0.1}, graphics.Offset{X: 1},
			GradientStop{Position: 0}), "Gradient.StartPoint.X"},
		{"end point outside unit square", PointGradient(graphics.Offset{}, graphics.Offset{Y: 1.5},
			GradientStop{Position: 0}), "Gradient.EndPoint.Y"},
		{"no stops", PointGradient(graphics.Offset{}, graphics.Offset{X: 1}), "Gradient.Stops"},
		{"stop past the end", PointGradient(graphics.Offset{}, graphics.Offset{X: 1},
			GradientStop{Position: 0}, GradientStop{Position: 1.5}), "Gradient.Stops[1].Position"},
		{"unknown mode", &GradientSpec{Mode: GradientMode(7)}, "Gradient.Mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ResolveGradient(tt.spec, graphics.RectFromLTWH(0, 0, 10, 10))
			if g != nil {
				t.Error("expected no gradient on error")
			}
			if !errors.IsInvalidSpec(err) {
				t.Fatalf("expected invalid specification, got %v", err)
			}
			if got := errors.FieldOf(err); got != tt.field {
				t.Errorf("field = %q, want %q", got, tt.field)
			}
		})
	}
}
