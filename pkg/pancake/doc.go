// Package pancake computes what to draw for a "pancake" shape: a rectangle or
// regular polygon with roundable corners, a solid or gradient fill, an
// optional solid or gradient stroke that may be dashed and may sit inside,
// outside or centered on the outline, and an optional drop shadow.
//
// Every entry point is a pure function from immutable specs to immutable
// results. Nothing here blocks, performs I/O or keeps state between calls,
// so the functions are safe to call from any goroutine.
//
// The full pipeline is [BuildPaintPlan]. Callers that track which property
// changed can use the granular entry points ([BuildOutline],
// [ResolveGradient], [ResolveBorder], [ResolveShadow], [ResolveClip]) or
// [Rebuild] with the [Change] values produced by [Diff].
//
// A [PaintPlan] is replayed onto a backend with [PaintPlan.Paint], which
// fixes the composition order: shadow, fill, clipped children, stroke.
package pancake
