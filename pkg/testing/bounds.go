package testing

import (
	"github.com/go-drift/pancake/pkg/graphics"
	"github.com/go-drift/pancake/pkg/pancake"
)

// PaintedBounds replays plan, with optional children, through a canvas that
// draws nothing and returns the union of the device-space bounds every draw
// call could touch. Strokes include half their width and shadows their blur
// extent. Clips are applied as rectangles.
func PaintedBounds(plan *pancake.PaintPlan, children func(graphics.Canvas)) graphics.Rect {
	c := &boundsCanvas{}
	plan.Paint(c, children)
	return c.bounds
}

// boundsCanvas is a no-op canvas that tracks only translation and clip state
// and accumulates the area each draw call covers.
type boundsCanvas struct {
	tracker transformTracker
	bounds  graphics.Rect
	size    graphics.Size
}

var _ graphics.Canvas = (*boundsCanvas)(nil)

func (c *boundsCanvas) Save()                    { c.tracker.save() }
func (c *boundsCanvas) Restore()                 { c.tracker.restore() }
func (c *boundsCanvas) Translate(dx, dy float64) { c.tracker.translate(dx, dy) }

func (c *boundsCanvas) ClipPath(path *graphics.Path, _ bool) {
	c.tracker.clipRect(path.Bounds())
}

// Clear covers the active clip. Without a clip the canvas has no extent to
// cover, so nothing is added.
func (c *boundsCanvas) Clear(_ graphics.Color) {
	if clip := c.tracker.currentClip(); clip != nil {
		c.bounds = c.bounds.Union(*clip)
	}
}

func (c *boundsCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	r := path.Bounds()
	if paint.Style == graphics.PaintStyleStroke {
		r = r.Inset(-paint.StrokeWidth / 2)
	}
	c.add(r)
}

func (c *boundsCanvas) DrawPathShadow(path *graphics.Path, shadow graphics.BoxShadow) {
	c.add(path.Bounds().Translate(shadow.Offset.X, shadow.Offset.Y).Inset(-shadow.Extent()))
}

func (c *boundsCanvas) Size() graphics.Size {
	return c.size
}

// add maps a local rect to device space, clips it and adds it to the bounds.
func (c *boundsCanvas) add(local graphics.Rect) {
	r := local.Translate(c.tracker.transform.X, c.tracker.transform.Y)
	if clip := c.tracker.currentClip(); clip != nil {
		r = clip.Intersect(r)
	}
	c.bounds = c.bounds.Union(r)
}

// transformTracker maintains translation and clip state in device space.
type transformTracker struct {
	transform graphics.Offset
	saveStack []trackerSaveState
	clips     []graphics.Rect
}

type trackerSaveState struct {
	transform graphics.Offset
	clipDepth int
}

func (t *transformTracker) save() {
	t.saveStack = append(t.saveStack, trackerSaveState{
		transform: t.transform,
		clipDepth: len(t.clips),
	})
}

func (t *transformTracker) restore() {
	if len(t.saveStack) > 0 {
		state := t.saveStack[len(t.saveStack)-1]
		t.saveStack = t.saveStack[:len(t.saveStack)-1]
		t.transform = state.transform
		t.clips = t.clips[:state.clipDepth]
	}
}

func (t *transformTracker) translate(dx, dy float64) {
	t.transform.X += dx
	t.transform.Y += dy
}

func (t *transformTracker) clipRect(rect graphics.Rect) {
	globalRect := rect.Translate(t.transform.X, t.transform.Y)
	if len(t.clips) > 0 {
		globalRect = t.clips[len(t.clips)-1].Intersect(globalRect)
	}
	t.clips = append(t.clips, globalRect)
}

// currentClip returns the active clip bounds, or nil if no clip is active.
func (t *transformTracker) currentClip() *graphics.Rect {
	if len(t.clips) > 0 {
		clip := t.clips[len(t.clips)-1]
		return &clip
	}
	return nil
}
