package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/pancake/cmd/pancake/internal/config"
	"github.com/go-drift/pancake/pkg/errors"
	"github.com/go-drift/pancake/pkg/pancake"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check scene files without rendering",
		Long: `Check one or more scene files.

Each file is parsed and its specs are validated. Invalid files are reported
with the offending field; the command fails if any file is invalid.`,
		Usage: "pancake validate <scene.yaml>...",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	const op = "pancake validate"
	if len(args) == 0 {
		return fmt.Errorf("at least one scene file is required\n\nUsage: pancake validate <scene.yaml>...")
	}

	failed := 0
	for _, path := range args {
		_, specs, err := loadScene(op, path)
		if err == nil {
			if verr := specs.Validate(); verr != nil {
				err = fail(op, errors.KindSpec, verr)
			}
		}
		if err != nil {
			failed++
			if field := errors.FieldOf(err); field != "" {
				fmt.Fprintf(stdout, "%s: invalid %s: %v\n", path, field, err)
			} else {
				fmt.Fprintf(stdout, "%s: %v\n", path, err)
			}
			continue
		}
		fmt.Fprintf(stdout, "%s: ok (%s)\n", path, describe(specs))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenes invalid", failed, len(args))
	}
	return nil
}

// describe summarizes specs in one line, e.g.
// "rect 120x80, fill #FF0000, border 3 outside, shadow blur 8".
func describe(s pancake.Specs) string {
	var parts []string
	if s.Shape.Sides == 4 {
		parts = append(parts, fmt.Sprintf("rect %gx%g", s.Shape.Width, s.Shape.Height))
	} else {
		parts = append(parts, fmt.Sprintf("%d-gon %gx%g", s.Shape.Sides, s.Shape.Width, s.Shape.Height))
	}
	if s.Fill.Gradient != nil {
		parts = append(parts, "fill "+s.Fill.Gradient.Mode.String()+" gradient")
	} else {
		parts = append(parts, "fill "+config.FormatColor(s.Fill.Color))
	}
	if s.Border != nil {
		border := fmt.Sprintf("border %g %s", s.Border.Thickness, s.Border.DrawingStyle)
		if len(s.Border.DashPattern) > 0 {
			border += " dashed"
		}
		parts = append(parts, border)
	}
	if s.Shadow != nil {
		parts = append(parts, fmt.Sprintf("shadow blur %g", s.Shadow.BlurRadius))
	}
	return strings.Join(parts, ", ")
}
