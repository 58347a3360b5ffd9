package pancake

import (
	"github.com/go-drift/pancake/pkg/graphics"
)

// FillInstruction paints the shape's interior.
type FillInstruction struct {
	Outline  Outline
	Color    graphics.Color
	Gradient *graphics.LinearGradient // overrides Color when set
}

// Paint returns the backend paint for the fill.
func (f FillInstruction) Paint() graphics.Paint {
	paint := graphics.DefaultPaint()
	paint.Color = f.Color
	paint.Gradient = f.Gradient
	return paint
}

// StrokeInstruction paints the border.
type StrokeInstruction struct {
	Geometry StrokeGeometry
	Style    DrawingStyle
	Color    graphics.Color
	Gradient *graphics.LinearGradient // overrides Color when set
}

// Paint returns the backend paint for the stroke.
func (s StrokeInstruction) Paint() graphics.Paint {
	paint := graphics.DefaultPaint()
	paint.Style = graphics.PaintStyleStroke
	paint.Color = s.Color
	paint.Gradient = s.Gradient
	paint.StrokeWidth = s.Geometry.Width
	paint.StrokeJoin = graphics.JoinRound
	paint.Dash = strokeDash(&s.Geometry)
	return paint
}

// PaintPlan is everything a backend needs to draw one frame of the shape.
// Plans are never modified after they are built; rebuild instead.
type PaintPlan struct {
	// Specs are the inputs the plan was built from.
	Specs Specs
	// Bounds is the shape's layout rectangle.
	Bounds  graphics.Rect
	Outline Outline
	Shadow  *ShadowInstruction
	Fill    FillInstruction
	Clip    ClipInstruction
	Stroke  *StrokeInstruction
}

// Empty reports whether the plan draws nothing.
func (p *PaintPlan) Empty() bool {
	return p == nil || p.Outline.IsEmpty()
}

// DrawBounds returns the area the plan can paint: the outline, the stroke
// (including the half width outside its path) and the shadow.
func (p *PaintPlan) DrawBounds() graphics.Rect {
	if p.Empty() {
		return graphics.Rect{}
	}
	r := p.Outline.Bounds
	if p.Stroke != nil && !p.Stroke.Geometry.Outline.IsEmpty() {
		r = r.Union(p.Stroke.Geometry.Outline.Bounds.Inset(-p.Stroke.Geometry.Width / 2))
	}
	return r.Union(p.Shadow.Bounds())
}

// BuildPaintPlan validates every spec and assembles the plan. Any invalid
// field fails the whole call with an error matching
// errors.ErrInvalidSpecification that names the field; partial plans are
// never returned. A shape with non-positive width or height is not an error
// and yields an empty plan.
func BuildPaintPlan(shape ShapeSpec, fill FillSpec, border *BorderSpec, shadow *ShadowSpec) (*PaintPlan, error) {
	return buildPlan(opBuildPaintPlan, Specs{Shape: shape, Fill: fill, Border: border, Shadow: shadow})
}

func buildPlan(op string, specs Specs) (*PaintPlan, error) {
	if err := validateSpecs(op, specs); err != nil {
		return nil, err
	}
	specs = specs.clone()
	plan := &PaintPlan{Specs: specs, Bounds: specs.Shape.Bounds()}
	if !specs.Shape.IsDrawable() {
		return plan, nil
	}

	shape := specs.Shape
	plan.Outline = buildOutline(plan.Bounds, shape.Sides, shape.CornerRadius, shape.RotationOffsetDegrees)
	plan.Shadow = resolveShadow(shape, specs.Shadow)
	plan.Fill = resolveFill(specs.Fill, plan.Outline, plan.Bounds)
	plan.Clip = resolveClip(shape, plan.Outline)
	plan.Stroke = resolveStroke(specs.Border, shape, plan.Outline, specs.Shadow != nil)
	return plan, nil
}

func resolveFill(fill FillSpec, outline Outline, bounds graphics.Rect) FillInstruction {
	return FillInstruction{
		Outline:  outline,
		Color:    fill.Color,
		Gradient: resolveGradient(fill.Gradient, bounds),
	}
}

func resolveStroke(border *BorderSpec, shape ShapeSpec, outline Outline, elevated bool) *StrokeInstruction {
	if border == nil {
		return nil
	}
	geometry := resolveBorder(*border, shape, outline, elevated)
	if geometry == nil {
		return nil
	}
	return &StrokeInstruction{
		Geometry: *geometry,
		Style:    border.DrawingStyle,
		Color:    border.Color,
		// Resolved against the shape bounds, not the stroke outline.
		Gradient: resolveGradient(border.Gradient, shape.Bounds()),
	}
}
