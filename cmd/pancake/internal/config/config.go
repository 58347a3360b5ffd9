// Package config loads pancake scene files.
//
// A scene is a YAML document describing one shape and how to paint it:
//
//	version: v1
//	shape:
//	  width: 120
//	  height: 80
//	  radius: 12
//	fill:
//	  gradient:
//	    angle: 45
//	    start: "#FF8800"
//	    end: "#8800FF"
//	border:
//	  thickness: 3
//	  color: "#000000"
//	  style: outside
//	  dash: [6, 2]
//	shadow:
//	  blur: 8
//	  opacity: 0.4
//	  offset: [0, 4]
//	output:
//	  background: "#FFFFFF"
//	  padding: 4
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pancake/pkg/graphics"
	"github.com/go-drift/pancake/pkg/pancake"
	"github.com/go-drift/pancake/pkg/raster"
)

// DefaultVersion is assumed when a scene omits its version.
const DefaultVersion = "v1.0.0"

// SupportedMajor is the scene schema major version this build reads.
const SupportedMajor = "v1"

// Scene is the top-level scene document.
type Scene struct {
	Version string  `yaml:"version,omitempty"`
	Shape   Shape   `yaml:"shape"`
	Fill    Fill    `yaml:"fill,omitempty"`
	Border  *Border `yaml:"border,omitempty"`
	Shadow  *Shadow `yaml:"shadow,omitempty"`
	Output  Output  `yaml:"output,omitempty"`
}

// Shape describes the outline. Sides defaults to 4. Corners, when set,
// overrides Radius.
type Shape struct {
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Sides    *int     `yaml:"sides,omitempty"`
	Radius   float64  `yaml:"radius,omitempty"`
	Corners  *Corners `yaml:"corners,omitempty"`
	Rotation float64  `yaml:"rotation,omitempty"`
}

// Corners sets each corner radius of a rectangle.
type Corners struct {
	TopLeft     float64 `yaml:"topLeft"`
	TopRight    float64 `yaml:"topRight"`
	BottomRight float64 `yaml:"bottomRight"`
	BottomLeft  float64 `yaml:"bottomLeft"`
}

// Fill is the shape's background.
type Fill struct {
	Color    string    `yaml:"color,omitempty"`
	Gradient *Gradient `yaml:"gradient,omitempty"`
}

// Gradient is either an angle gradient (Angle, Start, End) or, when Stops
// is set, a points gradient (From, To, Stops).
type Gradient struct {
	Angle float64   `yaml:"angle,omitempty"`
	Start string    `yaml:"start,omitempty"`
	End   string    `yaml:"end,omitempty"`
	From  []float64 `yaml:"from,omitempty"`
	To    []float64 `yaml:"to,omitempty"`
	Stops []Stop    `yaml:"stops,omitempty"`
}

// Stop is one color stop of a points gradient.
type Stop struct {
	Position float64 `yaml:"position"`
	Color    string  `yaml:"color"`
}

// Border is the stroke around the shape.
type Border struct {
	Thickness float64   `yaml:"thickness"`
	Color     string    `yaml:"color,omitempty"`
	Style     string    `yaml:"style,omitempty"`
	Dash      []int     `yaml:"dash,omitempty"`
	Gradient  *Gradient `yaml:"gradient,omitempty"`
}

// Shadow is the elevation shadow. Opacity defaults to 1 and Color to black.
type Shadow struct {
	Blur    float64   `yaml:"blur"`
	Opacity *float64  `yaml:"opacity,omitempty"`
	Color   string    `yaml:"color,omitempty"`
	Offset  []float64 `yaml:"offset,omitempty"`
}

// Output controls the rendered image.
type Output struct {
	Background string  `yaml:"background,omitempty"`
	Padding    float64 `yaml:"padding,omitempty"`
}

// Load reads and parses the scene at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	scene, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}

// Parse decodes a scene document. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var scene Scene
	if err := dec.Decode(&scene); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scene is empty")
		}
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := scene.checkVersion(); err != nil {
		return nil, err
	}
	return &scene, nil
}

func (s *Scene) checkVersion() error {
	if s.Version == "" {
		s.Version = DefaultVersion
	}
	if !semver.IsValid(s.Version) {
		return fmt.Errorf("invalid scene version %q (want a semantic version like %s)", s.Version, DefaultVersion)
	}
	if major := semver.Major(s.Version); major != SupportedMajor {
		return fmt.Errorf("unsupported scene version %s (this build reads %s)", s.Version, SupportedMajor)
	}
	return nil
}

// Specs converts the scene into engine specs. Colors are parsed here; the
// specs themselves are validated when the plan is built.
func (s *Scene) Specs() (pancake.Specs, error) {
	var specs pancake.Specs

	specs.Shape = s.Shape.spec()

	fill, err := s.Fill.spec()
	if err != nil {
		return pancake.Specs{}, err
	}
	specs.Fill = fill

	if s.Border != nil {
		border, err := s.Border.spec()
		if err != nil {
			return pancake.Specs{}, err
		}
		specs.Border = border
	}
	if s.Shadow != nil {
		shadow, err := s.Shadow.spec()
		if err != nil {
			return pancake.Specs{}, err
		}
		specs.Shadow = shadow
	}
	return specs, nil
}

// RenderOptions returns the raster options for the scene's output section.
func (s *Scene) RenderOptions() (raster.Options, error) {
	bg, err := parseOptionalColor("output.background", s.Output.Background, 0)
	if err != nil {
		return raster.Options{}, err
	}
	return raster.Options{Background: bg, Padding: s.Output.Padding}, nil
}

func (s Shape) spec() pancake.ShapeSpec {
	sides := 4
	if s.Sides != nil {
		sides = *s.Sides
	}
	radius := pancake.UniformRadius(s.Radius)
	if s.Corners != nil {
		radius = pancake.CornerRadius{
			TopLeft:     s.Corners.TopLeft,
			TopRight:    s.Corners.TopRight,
			BottomRight: s.Corners.BottomRight,
			BottomLeft:  s.Corners.BottomLeft,
		}
	}
	return pancake.ShapeSpec{
		Width:                 s.Width,
		Height:                s.Height,
		Sides:                 sides,
		CornerRadius:          radius,
		RotationOffsetDegrees: s.Rotation,
	}
}

func (f Fill) spec() (pancake.FillSpec, error) {
	color, err := parseOptionalColor("fill.color", f.Color, 0)
	if err != nil {
		return pancake.FillSpec{}, err
	}
	gradient, err := f.Gradient.spec("fill.gradient")
	if err != nil {
		return pancake.FillSpec{}, err
	}
	return pancake.FillSpec{Color: color, Gradient: gradient}, nil
}

func (b *Border) spec() (*pancake.BorderSpec, error) {
	color, err := parseOptionalColor("border.color", b.Color, graphics.ColorBlack)
	if err != nil {
		return nil, err
	}
	style, err := pancake.ParseDrawingStyle(b.Style)
	if err != nil {
		return nil, fmt.Errorf("border.style: %w", err)
	}
	gradient, err := b.Gradient.spec("border.gradient")
	if err != nil {
		return nil, err
	}
	return &pancake.BorderSpec{
		Thickness:    b.Thickness,
		Color:        color,
		DrawingStyle: style,
		DashPattern:  append([]int(nil), b.Dash...),
		Gradient:     gradient,
	}, nil
}

func (s *Shadow) spec() (*pancake.ShadowSpec, error) {
	color, err := parseOptionalColor("shadow.color", s.Color, graphics.ColorBlack)
	if err != nil {
		return nil, err
	}
	opacity := 1.0
	if s.Opacity != nil {
		opacity = *s.Opacity
	}
	offset := graphics.Offset{}
	if s.Offset != nil {
		if offset, err = parsePoint("shadow.offset", s.Offset); err != nil {
			return nil, err
		}
	}
	return &pancake.ShadowSpec{
		BlurRadius: s.Blur,
		Opacity:    opacity,
		Color:      color,
		Offset:     offset,
	}, nil
}

func (g *Gradient) spec(field string) (*pancake.GradientSpec, error) {
	if g == nil {
		return nil, nil
	}
	if len(g.Stops) == 0 {
		start, err := ParseColor(g.Start)
		if err != nil {
			return nil, fmt.Errorf("%s.start: %w", field, err)
		}
		end, err := ParseColor(g.End)
		if err != nil {
			return nil, fmt.Errorf("%s.end: %w", field, err)
		}
		return pancake.AngleGradient(g.Angle, start, end), nil
	}

	from, err := parsePoint(field+".from", g.From)
	if err != nil {
		return nil, err
	}
	to, err := parsePoint(field+".to", g.To)
	if err != nil {
		return nil, err
	}
	stops := make([]pancake.GradientStop, len(g.Stops))
	for i, s := range g.Stops {
		c, err := ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("%s.stops[%d].color: %w", field, i, err)
		}
		stops[i] = pancake.GradientStop{Position: s.Position, Color: c}
	}
	return pancake.PointGradient(from, to, stops...), nil
}

func parsePoint(field string, v []float64) (graphics.Offset, error) {
	if len(v) != 2 {
		return graphics.Offset{}, fmt.Errorf("%s: want [x, y], got %v", field, v)
	}
	return graphics.Offset{X: v[0], Y: v[1]}, nil
}

func parseOptionalColor(field, s string, def graphics.Color) (graphics.Color, error) {
	if s == "" {
		return def, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}
