package testing

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/pancake/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

var _ graphics.Canvas = (*serializingCanvas)(nil)

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) ClipPath(path *graphics.Path, convex bool) {
	c.ops = append(c.ops, DisplayOp{
		Op: "clipPath",
		Params: sortedMap(
			"bounds", serializeRect(path.Bounds()),
			"convex", convex,
			"path", serializePath(path),
		),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := sortedMap(
		"bounds", serializeRect(path.Bounds()),
		"style", paint.Style.String(),
		"path", serializePath(path),
	)
	if paint.Gradient.IsValid() {
		params["gradient"] = serializeGradient(paint.Gradient)
	} else {
		params["color"] = serializeColor(paint.Color)
	}
	if paint.Style == graphics.PaintStyleStroke {
		params["strokeWidth"] = round2(paint.StrokeWidth)
		if paint.Dash != nil {
			params["dash"] = serializeDash(paint.Dash)
		}
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *serializingCanvas) DrawPathShadow(path *graphics.Path, shadow graphics.BoxShadow) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawPathShadow",
		Params: sortedMap(
			"bounds", serializeRect(path.Bounds()),
			"color", serializeColor(shadow.Color),
			"dx", round2(shadow.Offset.X),
			"dy", round2(shadow.Offset.Y),
			"blur", round2(shadow.BlurRadius),
		),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

// serializePath writes one string per command, e.g. "line_to 10 0".
func serializePath(p *graphics.Path) []string {
	cmds := make([]string, 0, len(p.Commands))
	for _, cmd := range p.Commands {
		var b strings.Builder
		b.WriteString(cmd.Op.String())
		for _, arg := range cmd.Args {
			fmt.Fprintf(&b, " %g", round2(arg))
		}
		cmds = append(cmds, b.String())
	}
	return cmds
}

func serializeGradient(g *graphics.LinearGradient) map[string]any {
	stops := make([]any, 0, len(g.Stops))
	for _, s := range g.Stops {
		stops = append(stops, sortedMap("position", round2(s.Position), "color", serializeColor(s.Color)))
	}
	return sortedMap(
		"start", []float64{round2(g.Start.X), round2(g.Start.Y)},
		"end", []float64{round2(g.End.X), round2(g.End.Y)},
		"stops", stops,
	)
}

func serializeDash(d *graphics.DashPattern) map[string]any {
	intervals := make([]float64, len(d.Intervals))
	for i, v := range d.Intervals {
		intervals[i] = round2(v)
	}
	return sortedMap("intervals", intervals, "phase", round2(d.Phase))
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	r := math.Round(f*100) / 100
	if r == 0 {
		// Avoid -0 in golden files.
		return 0
	}
	return r
}

// sortedMap creates a map from alternating key-value pairs. encoding/json
// writes map keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
