package pancake

import (
	"fmt"
	"math"

	"github.com/go-drift/pancake/pkg/errors"
)

const (
	opBuildOutline    = "pancake.BuildOutline"
	opResolveGradient = "pancake.ResolveGradient"
	opResolveBorder   = "pancake.ResolveBorder"
	opResolveShadow   = "pancake.ResolveShadow"
	opResolveClip     = "pancake.ResolveClip"
	opBuildPaintPlan  = "pancake.BuildPaintPlan"
	opRebuild         = "pancake.Rebuild"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateShape rejects side counts below 3, negative or non-finite radii,
// rotations outside [0, 360] and non-finite bounds. Non-positive bounds are
// accepted; they mean "nothing to draw".
func validateShape(op string, s ShapeSpec) error {
	if !finite(s.Width) {
		return errors.InvalidSpec(op, "Shape.Width", s.Width, "must be finite")
	}
	if !finite(s.Height) {
		return errors.InvalidSpec(op, "Shape.Height", s.Height, "must be finite")
	}
	if s.Sides < 3 {
		return errors.InvalidSpec(op, "Shape.Sides", s.Sides, "must be at least 3")
	}
	radii := []struct {
		field string
		value float64
	}{
		{"Shape.CornerRadius.TopLeft", s.CornerRadius.TopLeft},
		{"Shape.CornerRadius.TopRight", s.CornerRadius.TopRight},
		{"Shape.CornerRadius.BottomRight", s.CornerRadius.BottomRight},
		{"Shape.CornerRadius.BottomLeft", s.CornerRadius.BottomLeft},
	}
	for _, r := range radii {
		if !finite(r.value) || r.value < 0 {
			return errors.InvalidSpec(op, r.field, r.value, "must be a finite value >= 0")
		}
	}
	if !finite(s.RotationOffsetDegrees) || s.RotationOffsetDegrees < 0 || s.RotationOffsetDegrees > 360 {
		return errors.InvalidSpec(op, "Shape.RotationOffsetDegrees", s.RotationOffsetDegrees, "must be within [0, 360]")
	}
	return nil
}

func validateUnit(op, field string, v float64) error {
	if !finite(v) || v < 0 || v > 1 {
		return errors.InvalidSpec(op, field, v, "must be within [0, 1]")
	}
	return nil
}

// validateGradient checks a gradient spec. prefix names the owning field,
// e.g. "Fill.Gradient". A nil spec is valid.
func validateGradient(op, prefix string, g *GradientSpec) error {
	if g == nil {
		return nil
	}
	switch g.Mode {
	case GradientModeAngle:
		if !finite(g.AngleDegrees) || g.AngleDegrees < 0 || g.AngleDegrees > 360 {
			return errors.InvalidSpec(op, prefix+".AngleDegrees", g.AngleDegrees, "must be within [0, 360]")
		}
	case GradientModePoints:
		points := []struct {
			field string
			value float64
		}{
			{prefix + ".StartPoint.X", g.StartPoint.X},
			{prefix + ".StartPoint.Y", g.StartPoint.Y},
			{prefix + ".EndPoint.X", g.EndPoint.X},
			{prefix + ".EndPoint.Y", g.EndPoint.Y},
		}
		for _, p := range points {
			if err := validateUnit(op, p.field, p.value); err != nil {
				return err
			}
		}
		if len(g.Stops) == 0 {
			return errors.InvalidSpec(op, prefix+".Stops", g.Stops, "at least one stop is required")
		}
		for i, stop := range g.Stops {
			if err := validateUnit(op, fmt.Sprintf("%s.Stops[%d].Position", prefix, i), stop.Position); err != nil {
				return err
			}
		}
	default:
		return errors.InvalidSpec(op, prefix+".Mode", g.Mode, "unknown gradient mode")
	}
	return nil
}

func validateFill(op string, f FillSpec) error {
	return validateGradient(op, "Fill.Gradient", f.Gradient)
}

func validateBorder(op string, b *BorderSpec) error {
	if b == nil {
		return nil
	}
	if !finite(b.Thickness) || b.Thickness < 0 {
		return errors.InvalidSpec(op, "Border.Thickness", b.Thickness, "must be a finite value >= 0")
	}
	switch b.DrawingStyle {
	case DrawingStyleInside, DrawingStyleOutside, DrawingStyleCentered:
	default:
		return errors.InvalidSpec(op, "Border.DrawingStyle", b.DrawingStyle, "unknown drawing style")
	}
	if _, err := normalizeDashPattern(op, b.DashPattern); err != nil {
		return err
	}
	return validateGradient(op, "Border.Gradient", b.Gradient)
}

func validateShadow(op string, s *ShadowSpec) error {
	if s == nil {
		return nil
	}
	if !finite(s.BlurRadius) || s.BlurRadius < 0 {
		return errors.InvalidSpec(op, "Shadow.BlurRadius", s.BlurRadius, "must be a finite value >= 0")
	}
	if err := validateUnit(op, "Shadow.Opacity", s.Opacity); err != nil {
		return err
	}
	if !finite(s.Offset.X) || !finite(s.Offset.Y) {
		return errors.InvalidSpec(op, "Shadow.Offset", s.Offset, "must be finite")
	}
	return nil
}

// validateSpecs runs every check in a fixed order so the reported field is
// deterministic when several are wrong.
func validateSpecs(op string, s Specs) error {
	if err := validateShape(op, s.Shape); err != nil {
		return err
	}
	if err := validateFill(op, s.Fill); err != nil {
		return err
	}
	if err := validateBorder(op, s.Border); err != nil {
		return err
	}
	return validateShadow(op, s.Shadow)
}
