package graphics

// Canvas is the drawing surface a backend renderer exposes. A paint plan is
// translated into calls on this interface; every backend implements it once.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipPath restricts future drawing to the interior of path. convex is a
	// hint: backends may only use hardware outline clipping when it is true.
	ClipPath(path *Path, convex bool)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawPath fills or strokes a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawPathShadow draws a blurred shadow of path, offset by shadow.Offset.
	DrawPathShadow(path *Path, shadow BoxShadow)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
