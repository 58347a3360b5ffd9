package raster

import (
	"image"
	"image/png"
	"io"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/go-drift/pancake/pkg/errors"
	"github.com/go-drift/pancake/pkg/graphics"
	"github.com/go-drift/pancake/pkg/pancake"
)

// DefaultCacheSize is the number of rendered images a Renderer keeps when
// Options.CacheSize is zero.
const DefaultCacheSize = 64

const snapEpsilon = 1e-6

// Options configures a Renderer.
type Options struct {
	// Background fills the image before the plan is painted.
	Background graphics.Color
	// Padding is added around the plan's draw bounds, in pixels.
	Padding float64
	// CacheSize bounds the number of cached images. Zero means DefaultCacheSize.
	CacheSize int
}

// Renderer turns specs into images. Results are cached by Specs.Key, so
// rendering the same specs twice returns the same image. Cached images are
// shared and must not be modified.
//
// A Renderer is safe for concurrent use.
type Renderer struct {
	opts  Options
	cache *lru.Cache[string, *image.RGBA]
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.CacheSize == 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.Padding < 0 || math.IsNaN(opts.Padding) || math.IsInf(opts.Padding, 0) {
		return nil, errors.Wrap("raster.NewRenderer", errors.KindConfig,
			errors.InvalidSpec("raster.NewRenderer", "Padding", opts.Padding, "must be a finite value >= 0"))
	}
	cache, err := lru.New[string, *image.RGBA](opts.CacheSize)
	if err != nil {
		return nil, errors.Wrap("raster.NewRenderer", errors.KindConfig, err)
	}
	return &Renderer{opts: opts, cache: cache}, nil
}

// Render builds the plan for specs and paints it. Invalid specs return an
// error matching errors.ErrInvalidSpecification.
func (r *Renderer) Render(specs pancake.Specs) (*image.RGBA, error) {
	key := specs.Key()
	if img, ok := r.cache.Get(key); ok {
		Logger().Debug("raster: cache hit", "key", key)
		return img, nil
	}
	plan, err := specs.Build()
	if err != nil {
		return nil, errors.Wrap("raster.Render", errors.KindRender, err)
	}
	img := r.RenderPlan(plan, nil)
	r.cache.Add(key, img)
	Logger().Debug("raster: rendered", "key", key,
		"width", img.Rect.Dx(), "height", img.Rect.Dy(), "cached", r.cache.Len())
	return img, nil
}

// RenderPlan paints plan into a new image sized to its draw bounds plus
// padding. children, if not nil, is painted clipped to the shape. The result
// is not cached. Empty plans produce an image holding only the padding.
func (r *Renderer) RenderPlan(plan *pancake.PaintPlan, children func(graphics.Canvas)) *image.RGBA {
	pad := r.opts.Padding
	bounds := graphics.Rect{}
	if !plan.Empty() {
		bounds = plan.DrawBounds()
	}
	// Snap outward, ignoring flattening noise below snapEpsilon.
	left := math.Floor(bounds.Left - pad + snapEpsilon)
	top := math.Floor(bounds.Top - pad + snapEpsilon)
	width := int(math.Ceil(bounds.Right+pad-snapEpsilon) - left)
	height := int(math.Ceil(bounds.Bottom+pad-snapEpsilon) - top)

	canvas := NewCanvas(width, height)
	canvas.Clear(r.opts.Background)
	canvas.Translate(-left, -top)
	plan.Paint(canvas, children)
	return canvas.Image()
}

// Purge drops every cached image.
func (r *Renderer) Purge() {
	r.cache.Purge()
}

// Len returns the number of cached images.
func (r *Renderer) Len() int {
	return r.cache.Len()
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap("raster.EncodePNG", errors.KindRender, err)
	}
	return nil
}
