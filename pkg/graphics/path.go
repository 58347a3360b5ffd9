package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo               // Draw line to point (x, y)
	PathOpQuadTo               // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpArcTo                // Circular arc around (cx, cy) with radius r from start angle through sweep
	PathOpClose                // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpArcTo:
		return "arc_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], ArcTo=[cx,cy,r,start,sweep]
}

// Path represents a closed or open outline made of lines, quadratic curves
// and circular arcs.
//
// Coordinates are y-down with the origin at the top-left, so a positive arc
// sweep and a positive signed area both mean clockwise on screen.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// ArcTo adds a circular arc centered at (cx, cy). The arc starts at
// startAngle and sweeps sweepAngle radians. If the current point is not the
// arc's start point, a straight line joins them first.
func (p *Path) ArcTo(cx, cy, radius, startAngle, sweepAngle float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpArcTo,
		Args: []float64{cx, cy, radius, startAngle, sweepAngle},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	clone := &Path{
		Commands: make([]PathCommand, len(p.Commands)),
		FillRule: p.FillRule,
	}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		copy(args, cmd.Args)
		clone.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return clone
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	out := p.Clone()
	if out == nil {
		return nil
	}
	for i := range out.Commands {
		args := out.Commands[i].Args
		switch out.Commands[i].Op {
		case PathOpMoveTo, PathOpLineTo:
			args[0] += dx
			args[1] += dy
		case PathOpQuadTo:
			args[0] += dx
			args[1] += dy
			args[2] += dx
			args[3] += dy
		case PathOpArcTo:
			args[0] += dx
			args[1] += dy
		}
	}
	return out
}

// Subpath is a flattened polyline. Closed subpaths implicitly connect their
// last point back to the first.
type Subpath struct {
	Points []Offset
	Closed bool
}

// Flatten converts the path into polylines whose maximum deviation from the
// true curves is about tolerance.
func (p *Path) Flatten(tolerance float64) []Subpath {
	if p.IsEmpty() {
		return nil
	}
	if tolerance <= 0 {
		tolerance = 0.1
	}
	var (
		subpaths []Subpath
		current  *Subpath
		cursor   Offset
	)
	begin := func(pt Offset) {
		subpaths = append(subpaths, Subpath{Points: []Offset{pt}})
		current = &subpaths[len(subpaths)-1]
		cursor = pt
	}
	lineTo := func(pt Offset) {
		if current == nil || current.Closed {
			begin(cursor)
		}
		if pt.Distance(cursor) > 1e-12 {
			current.Points = append(current.Points, pt)
		}
		cursor = pt
	}

	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			begin(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
		case PathOpLineTo:
			lineTo(Offset{X: cmd.Args[0], Y: cmd.Args[1]})
		case PathOpQuadTo:
			p0 := cursor
			p1 := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			p2 := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			dd := math.Hypot(p0.X-2*p1.X+p2.X, p0.Y-2*p1.Y+p2.Y)
			n := int(math.Ceil(math.Sqrt(dd / (8 * tolerance))))
			if n < 1 {
				n = 1
			}
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				mt := 1 - t
				lineTo(Offset{
					X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
					Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
				})
			}
		case PathOpArcTo:
			center := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			r, start, sweep := cmd.Args[2], cmd.Args[3], cmd.Args[4]
			startPt := center.Polar(r, start)
			if current == nil || current.Closed {
				begin(startPt)
			} else {
				lineTo(startPt)
			}
			n := arcSegments(r, sweep, tolerance)
			for i := 1; i <= n; i++ {
				lineTo(center.Polar(r, start+sweep*float64(i)/float64(n)))
			}
		case PathOpClose:
			if current != nil {
				current.Closed = true
				cursor = current.Points[0]
			}
		}
	}
	return subpaths
}

// arcSegments returns how many chords approximate an arc within tolerance.
func arcSegments(radius, sweep, tolerance float64) int {
	if radius <= tolerance {
		return 1
	}
	step := 2 * math.Acos(1-tolerance/radius)
	n := int(math.Ceil(math.Abs(sweep) / step))
	if n < 1 {
		n = 1
	}
	return n
}

// boundsTolerance is the flattening tolerance used for geometric queries.
const boundsTolerance = 0.01

// Bounds returns the axis-aligned bounding box of the path's geometry.
func (p *Path) Bounds() Rect {
	subpaths := p.Flatten(boundsTolerance)
	first := true
	var r Rect
	for _, sp := range subpaths {
		for _, pt := range sp.Points {
			if first {
				r = Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y}
				first = false
				continue
			}
			r.Left = math.Min(r.Left, pt.X)
			r.Top = math.Min(r.Top, pt.Y)
			r.Right = math.Max(r.Right, pt.X)
			r.Bottom = math.Max(r.Bottom, pt.Y)
		}
	}
	return r
}

// SignedArea returns the shoelace area of the flattened path. Positive values
// mean the outline winds clockwise on screen.
func (p *Path) SignedArea() float64 {
	var area float64
	for _, sp := range p.Flatten(boundsTolerance) {
		pts := sp.Points
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			area += a.X*b.Y - b.X*a.Y
		}
	}
	return area / 2
}

// IsConvex reports whether the path is a single closed outline that turns in
// one direction only and winds exactly once, which rules out
// self-intersection.
func (p *Path) IsConvex() bool {
	subpaths := p.Flatten(boundsTolerance)
	if len(subpaths) != 1 || !subpaths[0].Closed {
		return false
	}
	pts := subpaths[0].Points
	if len(pts) > 1 && pts[0].Distance(pts[len(pts)-1]) <= 1e-9 {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n < 3 {
		return false
	}
	var (
		sign int
		turn float64
	)
	for i := 0; i < n; i++ {
		a, b, c := pts[i], pts[(i+1)%n], pts[(i+2)%n]
		u := b.Sub(a)
		v := c.Sub(b)
		if math.Hypot(u.X, u.Y) < 1e-9 || math.Hypot(v.X, v.Y) < 1e-9 {
			continue
		}
		cross := u.X*v.Y - u.Y*v.X
		if math.Abs(cross) > 1e-9 {
			s := 1
			if cross < 0 {
				s = -1
			}
			if sign == 0 {
				sign = s
			} else if s != sign {
				return false
			}
		}
		turn += math.Atan2(cross, u.X*v.X+u.Y*v.Y)
	}
	return sign != 0 && math.Abs(math.Abs(turn)-2*math.Pi) < 1e-6
}
