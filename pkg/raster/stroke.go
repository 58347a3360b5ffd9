package raster

import (
	"math"

	"github.com/go-drift/pancake/pkg/graphics"
)

// flattenTolerance is the maximum deviation, in pixels, between a curve and
// the polyline that replaces it.
const flattenTolerance = 0.1

// polyline is an open or closed run of points.
type polyline struct {
	points []graphics.Offset
	closed bool
}

// fillPolygons flattens path into closed polygons offset by (dx, dy).
func fillPolygons(path *graphics.Path, dx, dy float64) [][]graphics.Offset {
	var polys [][]graphics.Offset
	for _, sp := range path.Flatten(flattenTolerance) {
		polys = append(polys, translatePoints(sp.Points, dx, dy))
	}
	return polys
}

func translatePoints(pts []graphics.Offset, dx, dy float64) []graphics.Offset {
	out := make([]graphics.Offset, len(pts))
	for i, pt := range pts {
		out[i] = graphics.Offset{X: pt.X + dx, Y: pt.Y + dy}
	}
	return out
}

// strokePolygons converts path into polygons covering a stroke of the given
// width with round joins and butt ends. Every polygon winds the same way so
// a nonzero fill paints overlaps once.
func strokePolygons(path *graphics.Path, width float64, dash *graphics.DashPattern, dx, dy float64) [][]graphics.Offset {
	if width <= 0 {
		return nil
	}
	var lines []polyline
	for _, sp := range path.Flatten(flattenTolerance) {
		pl := polyline{points: translatePoints(sp.Points, dx, dy), closed: sp.Closed}
		if dash != nil && dash.Length() > 0 {
			lines = append(lines, dashPolyline(pl, dash)...)
		} else {
			lines = append(lines, pl)
		}
	}

	hw := width / 2
	var polys [][]graphics.Offset
	for _, pl := range lines {
		pts := pl.points
		n := len(pts)
		if n < 2 {
			continue
		}
		segments := n - 1
		if pl.closed {
			segments = n
		}
		for i := 0; i < segments; i++ {
			if quad := segmentQuad(pts[i], pts[(i+1)%n], hw); quad != nil {
				polys = append(polys, quad)
			}
		}
		first, last := 1, n-1
		if pl.closed {
			first, last = 0, n
		}
		for i := first; i < last; i++ {
			polys = append(polys, roundJoin(pts[i], hw))
		}
	}
	return polys
}

// segmentQuad returns the rectangle of half-width hw around a-b.
func segmentQuad(a, b graphics.Offset, hw float64) []graphics.Offset {
	d := b.Sub(a)
	length := math.Hypot(d.X, d.Y)
	if length < 1e-9 {
		return nil
	}
	n := graphics.Offset{X: -d.Y / length * hw, Y: d.X / length * hw}
	return []graphics.Offset{a.Sub(n), b.Sub(n), b.Add(n), a.Add(n)}
}

// roundJoin returns a circle of radius hw around p.
func roundJoin(p graphics.Offset, hw float64) []graphics.Offset {
	segments := 8
	if hw > flattenTolerance {
		step := 2 * math.Acos(1-flattenTolerance/hw)
		segments = max(segments, int(math.Ceil(2*math.Pi/step)))
	}
	pts := make([]graphics.Offset, segments)
	for i := range pts {
		pts[i] = p.Polar(hw, 2*math.Pi*float64(i)/float64(segments))
	}
	return pts
}

// dashPolyline splits pl into the "on" runs of dash. Closed polylines are
// walked once around, back to their first point.
func dashPolyline(pl polyline, dash *graphics.DashPattern) []polyline {
	pts := pl.points
	if len(pts) < 2 {
		return nil
	}
	if pl.closed {
		pts = append(append([]graphics.Offset(nil), pts...), pts[0])
	}
	intervals := dash.Intervals
	count := len(intervals)
	period := dash.Length()
	if period < flattenTolerance {
		// Too fine to resolve: the pattern averages out to solid, or to
		// nothing when every "on" entry is zero.
		for i := 0; i < count; i += 2 {
			if intervals[i] > 0 {
				return []polyline{pl}
			}
		}
		return nil
	}

	idx := 0
	phase := math.Mod(dash.Phase, period)
	if phase < 0 {
		phase += period
	}
	for phase >= intervals[idx] {
		phase -= intervals[idx]
		idx = (idx + 1) % count
	}
	remaining := intervals[idx] - phase
	on := idx%2 == 0

	var (
		out     []polyline
		current []graphics.Offset
	)
	if on {
		current = []graphics.Offset{pts[0]}
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := a.Distance(b)
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			pt := a.Add(b.Sub(a).Scale(pos / segLen))
			if on {
				current = append(current, pt)
				out = append(out, polyline{points: current})
				current = nil
			} else {
				current = []graphics.Offset{pt}
			}
			on = !on
			idx = (idx + 1) % count
			remaining = intervals[idx]
		}
		remaining -= segLen - pos
		if on {
			current = append(current, b)
		}
	}
	if on && len(current) > 1 {
		out = append(out, polyline{points: current})
	}
	return out
}
