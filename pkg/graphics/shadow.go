package graphics

// BoxShadow defines a soft drop shadow cast behind a shape.
//
// BlurRadius controls softness. Sigma for a gaussian blur is BlurRadius * 0.5.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
}

// Sigma returns the gaussian blur sigma.
// Returns 0 if BlurRadius is zero or negative.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// Extent returns how far the shadow reaches past the shape's outline,
// counting blur only. Three sigmas covers all visible falloff.
func (s BoxShadow) Extent() float64 {
	return 3 * s.Sigma()
}
