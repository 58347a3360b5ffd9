// Command pancake renders shape scenes to PNG and inspects their paint plans.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/pancake/cmd/pancake/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
