package cmd

import (
	"fmt"

	"github.com/go-drift/pancake/pkg/errors"
	pancaketest "github.com/go-drift/pancake/pkg/testing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "plan",
		Short: "Print a scene's paint plan as JSON",
		Long: `Build the paint plan for a scene and print its display operations as
JSON, in the same format as golden snapshot files.

Flags:
  -o, --output FILE  Write the JSON to FILE instead of stdout`,
		Usage: "pancake plan <scene.yaml> [-o plan.json]",
		Run:   runPlan,
	})
}

func runPlan(args []string) error {
	const op = "pancake plan"
	output, rest, err := outputFlag(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("scene file is required\n\nUsage: pancake plan <scene.yaml> [-o plan.json]")
	}

	_, specs, err := loadScene(op, rest[0])
	if err != nil {
		return err
	}
	snap, err := pancaketest.CaptureSpecs(specs)
	if err != nil {
		return fail(op, errors.KindSpec, err)
	}

	if output != "" {
		if err := snap.UpdateFile(output); err != nil {
			return fail(op, errors.KindRender, err)
		}
		return nil
	}
	data, err := snap.Marshal()
	if err != nil {
		return fail(op, errors.KindRender, err)
	}
	_, err = stdout.Write(data)
	return err
}

