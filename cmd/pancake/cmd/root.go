// Package cmd implements the pancake CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, plan, validate).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-drift/pancake/pkg/errors"
	"github.com/go-drift/pancake/pkg/raster"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "pancake",
	Short: "pancake - shape and paint engine",
	Long: `pancake turns a shape description (a rounded rectangle or rounded
polygon with a fill, border and shadow) into a paint plan and renders it.

Use "pancake <command> --help" for more information about a command.`,
	Usage: "pancake <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// Output streams. Tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// verbose is set by --verbose for the duration of a command.
var verbose bool

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) (err error) {
	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags
	verbose = false
	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "pancake version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	if verbose {
		restore := enableVerbose()
		defer restore()
	}
	defer errors.RecoverInto("pancake "+cmd.Name, &err)
	return cmd.Run(cmdArgs)
}

// enableVerbose routes raster debug records and error reports to stderr.
// The returned func restores the quiet defaults.
func enableVerbose() func() {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	raster.SetLogger(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: true})
	return func() {
		raster.SetLogger(nil)
		errors.SetHandler(nil)
	}
}

// fail wraps err for op and, in verbose mode, reports it through the error
// handler.
func fail(op string, kind errors.ErrorKind, err error) error {
	wrapped := errors.Wrap(op, kind, err)
	if verbose {
		errors.Report(wrapped)
	}
	return wrapped
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Log rendering and errors to stderr")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  pancake render card.yaml           Render card.yaml to card.png")
	fmt.Fprintln(stdout, "  pancake plan card.yaml             Print the paint plan as JSON")
	fmt.Fprintln(stdout, "  pancake validate card.yaml         Check a scene without rendering")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
