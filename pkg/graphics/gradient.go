package graphics

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points in device space.
// Stops are ordered by Position.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *LinearGradient {
	return &LinearGradient{
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *LinearGradient) IsValid() bool {
	if g == nil || len(g.Stops) == 0 {
		return false
	}
	for _, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the gradient.
func (g *LinearGradient) Clone() *LinearGradient {
	if g == nil {
		return nil
	}
	return NewLinearGradient(g.Start, g.End, g.Stops)
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
