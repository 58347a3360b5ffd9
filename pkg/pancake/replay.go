package pancake

import (
	"github.com/go-drift/pancake/pkg/graphics"
)

// Paint replays the plan onto canvas in the fixed composition order:
// shadow, fill, children clipped to the shape, then the stroke on top so the
// border encloses the children. children may be nil.
func (p *PaintPlan) Paint(canvas graphics.Canvas, children func(graphics.Canvas)) {
	if p.Empty() {
		return
	}
	if p.Shadow != nil && !p.Shadow.Outline.IsEmpty() {
		canvas.DrawPathShadow(p.Shadow.Outline.Path, p.Shadow.Shadow)
	}
	canvas.DrawPath(p.Fill.Outline.Path, p.Fill.Paint())
	if children != nil {
		canvas.Save()
		canvas.ClipPath(p.Clip.Outline.Path, p.Clip.Outline.Convex)
		children(canvas)
		canvas.Restore()
	}
	if p.Stroke != nil && !p.Stroke.Geometry.Outline.IsEmpty() {
		canvas.DrawPath(p.Stroke.Geometry.Outline.Path, p.Stroke.Paint())
	}
}

// Record paints the plan into a display list so it can be replayed later or
// on another backend.
func (p *PaintPlan) Record(children func(graphics.Canvas)) *graphics.DisplayList {
	recorder := &graphics.PictureRecorder{}
	size := graphics.Size{}
	if !p.Empty() {
		size = p.DrawBounds().Size()
	}
	canvas := recorder.BeginRecording(size)
	p.Paint(canvas, children)
	return recorder.EndRecording()
}
