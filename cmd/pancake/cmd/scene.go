package cmd

import (
	"fmt"

	"github.com/go-drift/pancake/cmd/pancake/internal/config"
	"github.com/go-drift/pancake/pkg/errors"
	"github.com/go-drift/pancake/pkg/pancake"
)

// loadScene reads a scene file and converts it to specs. The specs are not
// validated yet.
func loadScene(op, path string) (*config.Scene, pancake.Specs, error) {
	scene, err := config.Load(path)
	if err != nil {
		return nil, pancake.Specs{}, fail(op, errors.KindConfig, err)
	}
	specs, err := scene.Specs()
	if err != nil {
		return nil, pancake.Specs{}, fail(op, errors.KindConfig, fmt.Errorf("%s: %w", path, err))
	}
	return scene, specs, nil
}

// outputFlag extracts "-o PATH" or "--output PATH" from args and returns the
// remaining positional arguments.
func outputFlag(args []string) (output string, rest []string, err error) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("%s requires a file path", args[i])
			}
			output = args[i+1]
			i++
		default:
			rest = append(rest, args[i])
		}
	}
	return output, rest, nil
}
