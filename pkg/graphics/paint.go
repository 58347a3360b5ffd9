package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// String returns a human-readable representation of the stroke join.
func (j StrokeJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("StrokeJoin(%d)", int(j))
	}
}

// DashPattern defines a stroke dash pattern as alternating on/off lengths.
//
// The pattern repeats along the stroke. For example, Intervals of [10, 5]
// draws 10 pixels on, 5 pixels off, repeating.
type DashPattern struct {
	Intervals []float64 // Alternating on/off lengths; even count >= 2
	Phase     float64   // Starting offset into the pattern in pixels
}

// Length returns the length of one full pattern cycle.
func (d *DashPattern) Length() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, v := range d.Intervals {
		total += v
	}
	return total
}

// Paint describes how to draw a path on a canvas.
type Paint struct {
	Color       Color
	Gradient    *LinearGradient // If set, overrides Color
	Style       PaintStyle      // Fill or stroke
	StrokeWidth float64         // Width of stroke in pixels
	StrokeJoin  StrokeJoin      // How corners are drawn; 0 = JoinMiter
	Dash        *DashPattern    // Dash pattern; nil = solid stroke
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeJoin:  JoinMiter,
	}
}
