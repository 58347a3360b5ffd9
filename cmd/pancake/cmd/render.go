package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/pancake/pkg/errors"
	"github.com/go-drift/pancake/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a scene to PNG",
		Long: `Render a scene file to a PNG image.

The image is sized to the shape's draw bounds (including the border and
shadow) plus the scene's output padding.

Flags:
  -o, --output FILE  Write the image to FILE (default: the scene path with .png)`,
		Usage: "pancake render <scene.yaml> [-o out.png]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	const op = "pancake render"
	output, rest, err := outputFlag(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("scene file is required\n\nUsage: pancake render <scene.yaml> [-o out.png]")
	}
	path := rest[0]
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}

	scene, specs, err := loadScene(op, path)
	if err != nil {
		return err
	}
	opts, err := scene.RenderOptions()
	if err != nil {
		return fail(op, errors.KindConfig, err)
	}
	renderer, err := raster.NewRenderer(opts)
	if err != nil {
		return fail(op, errors.KindConfig, err)
	}
	img, err := renderer.Render(specs)
	if err != nil {
		return fail(op, errors.KindRender, err)
	}

	f, err := os.Create(output)
	if err != nil {
		return fail(op, errors.KindRender, err)
	}
	if err := raster.EncodePNG(f, img); err != nil {
		f.Close()
		return fail(op, errors.KindRender, err)
	}
	if err := f.Close(); err != nil {
		return fail(op, errors.KindRender, err)
	}

	fmt.Fprintf(stdout, "Wrote %s (%dx%d)\n", output, img.Rect.Dx(), img.Rect.Dy())
	return nil
}
