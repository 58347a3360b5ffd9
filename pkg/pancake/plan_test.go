package pancake

import (
	"slices"
	"testing"

	"github.com/go-drift/pancake/pkg/errors"
	"github.com/go-drift/pancake/pkg/graphics"
)

// callCanvas records the name of every call made on it.
type callCanvas struct {
	calls []string
	paths []*graphics.Path
	paint []graphics.Paint
}

func (c *callCanvas) Save() { c.calls = append(c.calls, "save") }
func (c *callCanvas) Restore() { c.calls = append(c.calls, "restore") }
func (c *callCanvas) Translate(dx, dy float64) { c.calls = append(c.calls, "translate") }
func (c *callCanvas) Clear(graphics.Color) { c.calls = append(c.calls, "clear") }
func (c *callCanvas) Size() graphics.Size { return graphics.Size{Width: 100, Height: 100} }

func (c *callCanvas) ClipPath(path *graphics.Path, convex bool) {
	c.calls = append(c.calls, "clip")
	c.paths = append(c.paths, path)
}

func (c *callCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if paint.Style == graphics.PaintStyleStroke {
		c.calls = append(c.calls, "stroke")
	} else {
		c.calls = append(c.calls, "fill")
	}
	c.paths = append(c.paths, path)
	c.paint = append(c.paint, paint)
}

func (c *callCanvas) DrawPathShadow(path *graphics.Path, shadow graphics.BoxShadow) {
	c.calls = append(c.calls, "shadow")
	c.paths = append(c.paths, path)
}

func TestBuildPaintPlan_CenteredBorderScenario(t *testing.T) {
	plan, err := BuildPaintPlan(
		Rect(100, 100, UniformRadius(20)),
		FillSpec{Color: graphics.ColorRed},
		&BorderSpec{Thickness: 4, Color: graphics.ColorBlack, DrawingStyle: DrawingStyleCentered},
		nil,
	)
	if err != nil {
		t.Fatalf("BuildPaintPlan: %v", err)
	}
	if plan.Empty() {
		t.Fatal("plan should not be empty")
	}
	if plan.Fill.Gradient != nil || plan.Fill.Color != graphics.ColorRed {
		t.Errorf("fill = %+v, want solid red", plan.Fill)
	}
	if plan.Shadow != nil {
		t.Error("expected no shadow")
	}
	if plan.Stroke == nil {
		t.Fatal("expected a stroke")
	}
	if plan.Stroke.Geometry.Width != 4 || plan.Stroke.Geometry.Dashed() {
		t.Errorf("stroke geometry = %+v, want solid width 4", plan.Stroke.Geometry)
	}
	if plan.Stroke.Geometry.Outline.Path != plan.Outline.Path {
		t.Error("centered stroke should follow the fill outline")
	}
	paint := plan.Stroke.Paint()
	if paint.Style != graphics.PaintStyleStroke || paint.StrokeWidth != 4 || paint.Dash != nil || paint.StrokeJoin != graphics.JoinRound {
		t.Errorf("stroke paint = %+v", paint)
	}
	if plan.Clip.Outline.Path != plan.Outline.Path {
		t.Error("clip should reuse the fill outline")
	}
	want := graphics.Rect{Left: -2, Top: -2, Right: 102, Bottom: 102}
	if b := plan.DrawBounds(); !rectsApprox(b, want, 1e-9) {
		t.Errorf("DrawBounds = %+v, want %+v", b, want)
	}
}

func TestBuildPaintPlan_ElevatedHexagon(t *testing.T) {
	plan, err := BuildPaintPlan(
		Polygon(100, 100, 6, 10, 0),
		FillSpec{Gradient: AngleGradient(90, graphics.ColorRed, graphics.ColorBlue)},
		&BorderSpec{Thickness: 2, DashPattern: []int{4, 2}},
		&ShadowSpec{BlurRadius: 6, Opacity: 0.25, Color: graphics.ColorBlack, Offset: graphics.Offset{Y: 2}},
	)
	if err != nil {
		t.Fatalf("BuildPaintPlan: %v", err)
	}
	if !plan.Outline.Convex || !plan.Clip.Outline.Convex {
		t.Error("rounded hexagon should be convex")
	}
	if plan.Fill.Gradient == nil {
		t.Fatal("expected a gradient fill")
	}
	if !offsetsApprox(plan.Fill.Gradient.Start, graphics.Offset{X: 100, Y: 50}, 1e-9) {
		t.Errorf("gradient start = %+v, want (100,50)", plan.Fill.Gradient.Start)
	}
	if plan.Shadow == nil || plan.Shadow.Shadow.Color != graphics.Color(0x40000000) {
		t.Errorf("shadow = %+v", plan.Shadow)
	}
	// Inside stroke on an elevated shape moves in by half its width.
	if plan.Stroke.Geometry.Outline.Path == plan.Outline.Path {
		t.Error("elevated inside stroke should not reuse the fill outline")
	}
	if !slices.Equal(plan.Stroke.Geometry.DashArray, []float64{4, 2}) {
		t.Errorf("dash array = %v, want [4 2]", plan.Stroke.Geometry.DashArray)
	}
	if d := plan.Stroke.Paint().Dash; d == nil || !slices.Equal(d.Intervals, []float64{4, 2}) {
		t.Errorf("paint dash = %+v", d)
	}
}

func TestBuildPaintPlan_BorderGradientUsesShapeBounds(t *testing.T) {
	plan, err := BuildPaintPlan(
		Rect(100, 100, CornerRadius{}),
		FillSpec{},
		&BorderSpec{Thickness: 10, DrawingStyle: DrawingStyleOutside, Gradient: AngleGradient(90, graphics.ColorRed, graphics.ColorBlue)},
		nil,
	)
	if err != nil {
		t.Fatalf("BuildPaintPlan: %v", err)
	}
	g := plan.Stroke.Gradient
	if g == nil {
		t.Fatal("expected a border gradient")
	}
	if !offsetsApprox(g.Start, graphics.Offset{X: 100, Y: 50}, 1e-9) || !offsetsApprox(g.End, graphics.Offset{X: 0, Y: 50}, 1e-9) {
		t.Errorf("gradient = %+v -> %+v, want (100,50) -> (0,50)", g.Start, g.End)
	}
}

func TestBuildPaintPlan_EmptyBounds(t *testing.T) {
	plan, err := BuildPaintPlan(Rect(0, 50, UniformRadius(4)), FillSpec{Color: graphics.ColorRed},
		&BorderSpec{Thickness: 2}, &ShadowSpec{Opacity: 1})
	if err != nil {
		t.Fatalf("BuildPaintPlan: %v", err)
	}
	if !plan.Empty() || plan.Stroke != nil || plan.Shadow != nil {
		t.Errorf("expected an empty plan, got %+v", plan)
	}
	if b := plan.DrawBounds(); b != (graphics.Rect{}) {
		t.Errorf("DrawBounds = %+v, want zero", b)
	}
	canvas := &callCanvas{}
	plan.Paint(canvas, func(graphics.Canvas) { t.Error("children painted for an empty plan") })
	if len(canvas.calls) != 0 {
		t.Errorf("calls = %v, want none", canvas.calls)
	}
}

func TestBuildPaintPlan_ValidatesBeforeEmptyCheck(t *testing.T) {
	_, err := BuildPaintPlan(ShapeSpec{Width: 0, Height: 0, Sides: 4}, FillSpec{}, nil, &ShadowSpec{Opacity: 2})
	if errors.FieldOf(err) != "Shadow.Opacity" {
		t.Errorf("got %v, want a Shadow.Opacity error", err)
	}
}

func TestBuildPaintPlan_RejectsInvalidInput(t *testing.T) {
	shape := Rect(10, 10, CornerRadius{})
	tests := []struct {
		name   string
		fill   FillSpec
		border *BorderSpec
		shadow *ShadowSpec
		field  string
	}{
		{"fill gradient", FillSpec{Gradient: AngleGradient(-5, 0, 0)}, nil, nil, "Fill.Gradient.AngleDegrees"},
		{"border dash", FillSpec{}, &BorderSpec{Thickness: 1, DashPattern: []int{1, 2, 3}}, nil, "Border.DashPattern"},
		{"border gradient stops", FillSpec{}, &BorderSpec{Thickness: 1, Gradient: &GradientSpec{}}, nil, "Border.Gradient.Stops"},
		{"shadow blur", FillSpec{}, nil, &ShadowSpec{BlurRadius: -3}, "Shadow.BlurRadius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := BuildPaintPlan(shape, tt.fill, tt.border, tt.shadow)
			if plan != nil {
				t.Error("expected no plan on error")
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

func TestBuildPaintPlan_CopiesInputs(t *testing.T) {
	border := &BorderSpec{Thickness: 2, DashPattern: []int{3, 1}}
	plan, err := BuildPaintPlan(Rect(10, 10, CornerRadius{}), FillSpec{}, border, nil)
	if err != nil {
		t.Fatalf("BuildPaintPlan: %v", err)
	}
	border.DashPattern[0] = 99
	border.Thickness = 50
	if plan.Specs.Border.DashPattern[0] != 3 || plan.Specs.Border.Thickness != 2 {
		t.Errorf("plan specs changed with caller's border: %+v", plan.Specs.Border)
	}
}

func TestPaintPlan_PaintOrder(t *testing.T) {
	plan, err := BuildPaintPlan(
		Rect(100, 100, UniformRadius(8)),
		FillSpec{Color: graphics.ColorWhite},
		&BorderSpec{Thickness: 2, Color: graphics.ColorBlack},
		&ShadowSpec{BlurRadius: 4, Opacity: 0.5},
	)
	if err != nil {
		t.Fatalf("BuildPaintPlan: %v", err)
	}

	t.Run("with children", func(t *testing.T) {
		canvas := &callCanvas{}
		plan.Paint(canvas, func(c graphics.Canvas) {
			c.DrawPath(graphics.NewPath(), graphics.DefaultPaint())
		})
		want := []string{"shadow", "fill", "save", "clip", "fill", "restore", "stroke"}
		if !slices.Equal(canvas.calls, want) {
			t.Errorf("calls = %v, want %v", canvas.calls, want)
		}
		if canvas.paths[2] != plan.Clip.Outline.Path {
			t.Error("children should be clipped to the clip outline")
		}
	})

	t.Run("without children", func(t *testing.T) {
		canvas := &callCanvas{}
		plan.Paint(canvas, nil)
		want := []string{"shadow", "fill", "stroke"}
		if !slices.Equal(canvas.calls, want) {
			t.Errorf("calls = %v, want %v", canvas.calls, want)
		}
	})

	t.Run("recorded", func(t *testing.T) {
		list := plan.Record(nil)
		if list.Len() != 3 {
			t.Fatalf("recorded %d ops, want 3", list.Len())
		}
		canvas := &callCanvas{}
		list.Paint(canvas)
		if want := []string{"shadow", "fill", "stroke"}; !slices.Equal(canvas.calls, want) {
			t.Errorf("replayed calls = %v, want %v", canvas.calls, want)
		}
	})
}
