package pancake

import (
	"github.com/go-drift/pancake/pkg/graphics"
)

// ShadowInstruction describes the elevation shadow cast behind the shape.
type ShadowInstruction struct {
	// Outline is the casting silhouette, before Shadow.Offset is applied.
	Outline Outline
	// Shadow carries the color (opacity folded into alpha), offset and blur.
	Shadow graphics.BoxShadow
}

// Bounds returns the area the shadow can touch, including blur falloff.
func (s *ShadowInstruction) Bounds() graphics.Rect {
	if s == nil || s.Outline.IsEmpty() {
		return graphics.Rect{}
	}
	return s.Outline.Bounds.
		Translate(s.Shadow.Offset.X, s.Shadow.Offset.Y).
		Inset(-s.Shadow.Extent())
}

// ClipInstruction is the outline child content is clipped to.
type ClipInstruction struct {
	Outline Outline
}

// ResolveShadow returns the shadow instruction for shape, or nil when shadow
// is nil or the shape is not drawable.
//
// Rounded rectangles cast their shadow with the top-left radius on all four
// corners. Renderers have always done this and per-corner shadow silhouettes
// are not supported.
func ResolveShadow(shape ShapeSpec, shadow *ShadowSpec) (*ShadowInstruction, error) {
	if err := validateShape(opResolveShadow, shape); err != nil {
		return nil, err
	}
	if err := validateShadow(opResolveShadow, shadow); err != nil {
		return nil, err
	}
	return resolveShadow(shape, shadow), nil
}

func resolveShadow(shape ShapeSpec, shadow *ShadowSpec) *ShadowInstruction {
	if shadow == nil || !shape.IsDrawable() {
		return nil
	}
	radii := shape.CornerRadius
	if shape.Sides == 4 {
		radii = UniformRadius(radii.TopLeft)
	}
	return &ShadowInstruction{
		Outline: buildOutline(shape.Bounds(), shape.Sides, radii, shape.RotationOffsetDegrees),
		Shadow: graphics.BoxShadow{
			Color:      shadow.Color.WithOpacity(shadow.Opacity),
			Offset:     shadow.Offset,
			BlurRadius: shadow.BlurRadius,
		},
	}
}

// ResolveClip returns the outline used to clip child content. It is always
// produced for a drawable shape, shadow or not.
func ResolveClip(shape ShapeSpec) (ClipInstruction, error) {
	if err := validateShape(opResolveClip, shape); err != nil {
		return ClipInstruction{}, err
	}
	return resolveClip(shape, Outline{}), nil
}

// resolveClip reuses outline when the caller has already built it.
func resolveClip(shape ShapeSpec, outline Outline) ClipInstruction {
	if !shape.IsDrawable() {
		return ClipInstruction{}
	}
	if outline.IsEmpty() {
		outline = buildOutline(shape.Bounds(), shape.Sides, shape.CornerRadius, shape.RotationOffsetDegrees)
	}
	return ClipInstruction{Outline: outline}
}
