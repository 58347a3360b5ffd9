package raster

import (
	"bytes"
	"context"
	"image/png"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-drift/pancake/pkg/errors"
	"github.com/go-drift/pancake/pkg/graphics"
	"github.com/go-drift/pancake/pkg/pancake"
)

func sampleSpecs() pancake.Specs {
	return pancake.Specs{
		Shape:  pancake.Rect(40, 30, pancake.UniformRadius(6)),
		Fill:   pancake.FillSpec{Color: graphics.ColorRed},
		Border: &pancake.BorderSpec{Thickness: 4, Color: graphics.ColorBlack, DrawingStyle: pancake.DrawingStyleOutside},
	}
}

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := NewRenderer(opts)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderer_SizesImageToDrawBounds(t *testing.T) {
	r := newTestRenderer(t, Options{Padding: 3})
	img, err := r.Render(sampleSpecs())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// 40x30, plus an outside stroke reaching 4px out, plus 3px padding.
	if w, h := img.Rect.Dx(), img.Rect.Dy(); w != 54 || h != 44 {
		t.Errorf("expected 54x44, got %dx%d", w, h)
	}
	// The shape's origin lands at (7,7).
	if got := img.RGBAAt(27, 22); got.R != 255 || got.A != 255 {
		t.Errorf("expected red fill at the center, got %+v", got)
	}
	if got := img.RGBAAt(4, 22); got.R != 0 || got.A != 255 {
		t.Errorf("expected black border left of the shape, got %+v", got)
	}
	if a := img.RGBAAt(1, 22).A; a != 0 {
		t.Errorf("expected transparent padding, got alpha %d", a)
	}
}

func TestRenderer_HairlineDashedBorder(t *testing.T) {
	r := newTestRenderer(t, Options{})
	img, err := r.Render(pancake.Specs{
		Shape:  pancake.Rect(100, 100, pancake.CornerRadius{}),
		Fill:   pancake.FillSpec{Color: graphics.ColorRed},
		Border: &pancake.BorderSpec{Thickness: 1e-20, Color: graphics.ColorBlack, DashPattern: []int{0, 2}},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.RGBAAt(50, 50); got.R != 255 || got.A != 255 {
		t.Errorf("expected red fill at the center, got %+v", got)
	}
}

func TestRenderer_Background(t *testing.T) {
	r := newTestRenderer(t, Options{Padding: 2, Background: graphics.ColorWhite})
	img, err := r.Render(sampleSpecs())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.RGBAAt(0, 0); got.R != 255 || got.G != 255 || got.B != 255 || got.A != 255 {
		t.Errorf("expected white background, got %+v", got)
	}
}

func TestRenderer_CachesByKey(t *testing.T) {
	r := newTestRenderer(t, Options{CacheSize: 2})
	a, err := r.Render(sampleSpecs())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := r.Render(sampleSpecs())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if a != b {
		t.Error("expected equal specs to hit the cache")
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 cached image, got %d", r.Len())
	}

	changed := sampleSpecs()
	changed.Fill.Color = graphics.ColorBlue
	c, err := r.Render(changed)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if c == a {
		t.Error("expected changed specs to miss the cache")
	}

	r.Purge()
	if r.Len() != 0 {
		t.Errorf("expected empty cache after Purge, got %d", r.Len())
	}
	d, err := r.Render(sampleSpecs())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if d == a {
		t.Error("expected Purge to force a new render")
	}
}

func TestRenderer_InvalidSpecs(t *testing.T) {
	r := newTestRenderer(t, Options{})
	specs := sampleSpecs()
	specs.Border.DashPattern = []int{1, 2, 3}
	img, err := r.Render(specs)
	if img != nil {
		t.Error("expected no image")
	}
	if !errors.IsInvalidSpec(err) {
		t.Fatalf("expected invalid specification, got %v", err)
	}
	if errors.FieldOf(err) != "Border.DashPattern" {
		t.Errorf("expected Border.DashPattern, got %q", errors.FieldOf(err))
	}
	if r.Len() != 0 {
		t.Error("expected failures not to be cached")
	}
}

func TestRenderer_EmptyPlan(t *testing.T) {
	r := newTestRenderer(t, Options{Padding: 2})
	specs := sampleSpecs()
	specs.Shape.Width = 0
	img, err := r.Render(specs)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if w, h := img.Rect.Dx(), img.Rect.Dy(); w != 4 || h != 4 {
		t.Errorf("expected a 4x4 padding-only image, got %dx%d", w, h)
	}
}

func TestRenderer_RejectsNegativePadding(t *testing.T) {
	if _, err := NewRenderer(Options{Padding: -1}); err == nil {
		t.Error("expected an error for negative padding")
	}
}

func TestRenderPlan_ClipsChildren(t *testing.T) {
	r := newTestRenderer(t, Options{})
	plan, err := pancake.BuildPaintPlan(pancake.Rect(20, 20, pancake.CornerRadius{}), pancake.FillSpec{}, nil, nil)
	if err != nil {
		t.Fatalf("BuildPaintPlan: %v", err)
	}
	img := r.RenderPlan(plan, func(c graphics.Canvas) {
		c.DrawPath(rectPath(-10, -10, 40, 40), fillPaint(graphics.ColorGreen))
	})
	if w := img.Rect.Dx(); w != 20 {
		t.Fatalf("expected width 20, got %d", w)
	}
	if got := img.RGBAAt(10, 10); got.G != 255 || got.A != 255 {
		t.Errorf("expected child content inside the shape, got %+v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	r := newTestRenderer(t, Options{})
	img, err := r.Render(sampleSpecs())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := newTestRenderer(t, Options{})
	if _, err := r.Render(sampleSpecs()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := r.Render(sampleSpecs()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "raster: rendered") || !strings.Contains(out, "raster: cache hit") {
		t.Errorf("expected render and cache-hit records, got %q", out)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("expected the default logger to be silent")
	}
}
