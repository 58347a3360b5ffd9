package pancake

import (
	"fmt"
	"hash/fnv"
	"io"
	"slices"
	"strconv"
)

// Specs bundles every input of a paint plan.
type Specs struct {
	Shape  ShapeSpec
	Fill   FillSpec
	Border *BorderSpec
	Shadow *ShadowSpec
}

// Build is shorthand for BuildPaintPlan(s.Shape, s.Fill, s.Border, s.Shadow).
func (s Specs) Build() (*PaintPlan, error) {
	return buildPlan(opBuildPaintPlan, s)
}

// Validate checks every spec without building anything.
func (s Specs) Validate() error {
	return validateSpecs("pancake.Specs.Validate", s)
}

func (s Specs) clone() Specs {
	s.Fill.Gradient = s.Fill.Gradient.clone()
	s.Border = s.Border.clone()
	s.Shadow = s.Shadow.clone()
	return s
}

// Key returns a stable digest of every field that affects the plan. Equal
// specs always have equal keys; renderers use it to key caches of rendered
// output and must treat a different key as an invalidation.
func (s Specs) Key() string {
	h := fnv.New64a()
	writeShape(h, s.Shape)
	writeGradient(h, s.Fill.Gradient)
	fmt.Fprintf(h, "fill:%08x;", uint32(s.Fill.Color))
	if b := s.Border; b != nil {
		fmt.Fprintf(h, "border:%s,%08x,%d,%v;", fmtFloat(b.Thickness), uint32(b.Color), b.DrawingStyle, b.DashPattern)
		writeGradient(h, b.Gradient)
	} else {
		io.WriteString(h, "border:nil;")
	}
	if sh := s.Shadow; sh != nil {
		fmt.Fprintf(h, "shadow:%s,%s,%08x,%s,%s;", fmtFloat(sh.BlurRadius), fmtFloat(sh.Opacity),
			uint32(sh.Color), fmtFloat(sh.Offset.X), fmtFloat(sh.Offset.Y))
	} else {
		io.WriteString(h, "shadow:nil;")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeShape(w io.Writer, s ShapeSpec) {
	fmt.Fprintf(w, "shape:%s,%s,%d,%s,%s,%s,%s,%s;",
		fmtFloat(s.Width), fmtFloat(s.Height), s.Sides,
		fmtFloat(s.CornerRadius.TopLeft), fmtFloat(s.CornerRadius.TopRight),
		fmtFloat(s.CornerRadius.BottomRight), fmtFloat(s.CornerRadius.BottomLeft),
		fmtFloat(s.RotationOffsetDegrees))
}

func writeGradient(w io.Writer, g *GradientSpec) {
	if g == nil {
		io.WriteString(w, "gradient:nil;")
		return
	}
	fmt.Fprintf(w, "gradient:%d,%s,%08x,%08x,%s,%s,%s,%s", g.Mode, fmtFloat(g.AngleDegrees),
		uint32(g.StartColor), uint32(g.EndColor),
		fmtFloat(g.StartPoint.X), fmtFloat(g.StartPoint.Y), fmtFloat(g.EndPoint.X), fmtFloat(g.EndPoint.Y))
	for _, stop := range g.Stops {
		fmt.Fprintf(w, ",%s:%08x", fmtFloat(stop.Position), uint32(stop.Color))
	}
	io.WriteString(w, ";")
}

// Change is one of ShapeChanged, FillChanged, BorderChanged or
// ShadowChanged. Each carries the new value of the group it names.
type Change interface {
	apply(s *Specs)
	group() changeGroup
	String() string
}

type changeGroup uint8

const (
	groupShape changeGroup = 1 << iota
	groupFill
	groupBorder
	groupShadow
)

// ShapeChanged replaces the shape. Every part of the plan depends on it.
type ShapeChanged struct{ Shape ShapeSpec }

// FillChanged replaces the fill.
type FillChanged struct{ Fill FillSpec }

// BorderChanged replaces the border. A nil Border removes it.
type BorderChanged struct{ Border *BorderSpec }

// ShadowChanged replaces the shadow. A nil Shadow removes it.
type ShadowChanged struct{ Shadow *ShadowSpec }

func (c ShapeChanged) apply(s *Specs)  { s.Shape = c.Shape }
func (c FillChanged) apply(s *Specs)   { s.Fill = c.Fill }
func (c BorderChanged) apply(s *Specs) { s.Border = c.Border }
func (c ShadowChanged) apply(s *Specs) { s.Shadow = c.Shadow }

func (ShapeChanged) group() changeGroup  { return groupShape }
func (FillChanged) group() changeGroup   { return groupFill }
func (BorderChanged) group() changeGroup { return groupBorder }
func (ShadowChanged) group() changeGroup { return groupShadow }

func (ShapeChanged) String() string  { return "shape" }
func (FillChanged) String() string   { return "fill" }
func (BorderChanged) String() string { return "border" }
func (ShadowChanged) String() string { return "shadow" }

// Diff returns the changes that turn old into updated, in the order shape,
// fill, border, shadow. Equal specs produce no changes.
func Diff(old, updated Specs) []Change {
	var changes []Change
	if old.Shape != updated.Shape {
		changes = append(changes, ShapeChanged{Shape: updated.Shape})
	}
	if !fillEqual(old.Fill, updated.Fill) {
		changes = append(changes, FillChanged{Fill: updated.Fill})
	}
	if !borderEqual(old.Border, updated.Border) {
		changes = append(changes, BorderChanged{Border: updated.Border})
	}
	if !shadowEqual(old.Shadow, updated.Shadow) {
		changes = append(changes, ShadowChanged{Shadow: updated.Shadow})
	}
	return changes
}

func gradientEqual(a, b *GradientSpec) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Mode == b.Mode &&
		a.AngleDegrees == b.AngleDegrees &&
		a.StartColor == b.StartColor &&
		a.EndColor == b.EndColor &&
		a.StartPoint == b.StartPoint &&
		a.EndPoint == b.EndPoint &&
		slices.Equal(a.Stops, b.Stops)
}

func fillEqual(a, b FillSpec) bool {
	return a.Color == b.Color && gradientEqual(a.Gradient, b.Gradient)
}

func borderEqual(a, b *BorderSpec) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Thickness == b.Thickness &&
		a.Color == b.Color &&
		a.DrawingStyle == b.DrawingStyle &&
		slices.Equal(a.DashPattern, b.DashPattern) &&
		gradientEqual(a.Gradient, b.Gradient)
}

func shadowEqual(a, b *ShadowSpec) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Rebuild returns a new plan equal to building prev.Specs with changes
// applied, re-running only the resolvers the changes affect. prev is never
// modified; unaffected instructions are shared with it. A nil prev, an empty
// prev or a ShapeChanged triggers a full build.
func Rebuild(prev *PaintPlan, changes ...Change) (*PaintPlan, error) {
	var specs Specs
	if prev != nil {
		specs = prev.Specs
	}
	var dirty changeGroup
	for _, c := range changes {
		c.apply(&specs)
		dirty |= c.group()
	}
	shape := dirty&groupShape != 0
	fill := dirty&groupFill != 0
	border := dirty&groupBorder != 0
	shadow := dirty&groupShadow != 0
	if prev == nil || prev.Empty() || shape {
		return buildPlan(opRebuild, specs)
	}
	if err := validateSpecs(opRebuild, specs); err != nil {
		return nil, err
	}
	specs = specs.clone()

	next := *prev
	next.Specs = specs
	if fill {
		next.Fill = resolveFill(specs.Fill, next.Outline, next.Bounds)
	}
	if shadow {
		next.Shadow = resolveShadow(specs.Shape, specs.Shadow)
	}
	// Inside strokes move when elevation toggles.
	if border || shadow {
		next.Stroke = resolveStroke(specs.Border, specs.Shape, next.Outline, specs.Shadow != nil)
	}
	return &next, nil
}
