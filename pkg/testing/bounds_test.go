package testing

import (
	"math"
	"testing"

	"github.com/go-drift/pancake/pkg/graphics"
	"github.com/go-drift/pancake/pkg/pancake"
)

func rectClose(a, b graphics.Rect) bool {
	const tol = 1e-9
	return math.Abs(a.Left-b.Left) < tol && math.Abs(a.Top-b.Top) < tol &&
		math.Abs(a.Right-b.Right) < tol && math.Abs(a.Bottom-b.Bottom) < tol
}

func TestPaintedBounds_MatchDrawBounds(t *testing.T) {
	shadow := &pancake.ShadowSpec{BlurRadius: 10, Opacity: 0.3, Color: graphics.ColorBlack, Offset: graphics.Offset{X: 2, Y: 6}}
	tests := []struct {
		name  string
		specs pancake.Specs
	}{
		{"fill only", squareSpecs()},
		{"outside border", pancake.Specs{
			Shape:  pancake.Rect(80, 40, pancake.UniformRadius(8)),
			Border: &pancake.BorderSpec{Thickness: 6, Color: graphics.ColorBlack, DrawingStyle: pancake.DrawingStyleOutside},
		}},
		{"elevated inside border", pancake.Specs{
			Shape:  pancake.Rect(80, 40, pancake.CornerRadius{TopLeft: 4, BottomRight: 12}),
			Border: &pancake.BorderSpec{Thickness: 4, Color: graphics.ColorBlack},
			Shadow: shadow,
		}},
		{"hexagon", pancake.Specs{
			Shape:  pancake.Polygon(100, 100, 6, 10, 15),
			Border: &pancake.BorderSpec{Thickness: 2, Color: graphics.ColorBlack, DrawingStyle: pancake.DrawingStyleCentered, DashPattern: []int{3}},
			Shadow: shadow,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := tt.specs.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			want := plan.DrawBounds()
			if got := PaintedBounds(plan, nil); !rectClose(got, want) {
				t.Errorf("expected painted bounds %+v, got %+v", want, got)
			}
		})
	}
}

func TestPaintedBounds_ChildrenAreClipped(t *testing.T) {
	plan, err := squareSpecs().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := PaintedBounds(plan, func(c graphics.Canvas) {
		c.Save()
		c.Translate(-50, -50)
		p := graphics.NewPath()
		p.MoveTo(0, 0)
		p.LineTo(500, 0)
		p.LineTo(500, 500)
		p.Close()
		c.DrawPath(p, graphics.DefaultPaint())
		c.Restore()
		c.Clear(graphics.ColorWhite)
	})
	if want := plan.DrawBounds(); !rectClose(got, want) {
		t.Errorf("expected children to stay inside %+v, got %+v", want, got)
	}
}

func TestPaintedBounds_Empty(t *testing.T) {
	specs := squareSpecs()
	specs.Shape.Width = -1
	plan, err := specs.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := PaintedBounds(plan, nil); !got.IsEmpty() {
		t.Errorf("expected nothing painted, got %+v", got)
	}
}

func TestTransformTracker(t *testing.T) {
	var tr transformTracker
	tr.translate(10, 5)
	tr.save()
	tr.clipRect(graphics.Rect{Left: 0, Top: 0, Right: 20, Bottom: 20})
	tr.translate(5, 5)
	tr.clipRect(graphics.Rect{Left: 0, Top: 0, Right: 20, Bottom: 20})

	want := graphics.Rect{Left: 15, Top: 10, Right: 30, Bottom: 25}
	if clip := tr.currentClip(); clip == nil || *clip != want {
		t.Errorf("expected clip %+v, got %v", want, clip)
	}
	tr.restore()
	if tr.currentClip() != nil {
		t.Error("expected restore to drop the clips")
	}
	if tr.transform != (graphics.Offset{X: 10, Y: 5}) {
		t.Errorf("expected transform (10,5), got %+v", tr.transform)
	}
	tr.restore()
	if tr.transform != (graphics.Offset{X: 10, Y: 5}) {
		t.Error("expected an unbalanced restore to be ignored")
	}
}
