// Package main provides the CLI entry point for rpncalc.
//
// Usage:
//
//	rpncalc repl                  # Interactive keypad
//	rpncalc eval 3 4 +            # Press keys, print the stack, save
//	rpncalc show -vars            # Print the saved stack and variables
//	rpncalc export state.csv      # Export state (.csv, .json, .parquet)
//	rpncalc import state.parquet  # Replace state from a snapshot
//	rpncalc mcp                   # Serve the engine as MCP tools on stdio
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/akhildatla/rpncalc/internal/mcp"
	"github.com/akhildatla/rpncalc/pkg/calc"
	"github.com/akhildatla/rpncalc/pkg/repl"
	"github.com/akhildatla/rpncalc/pkg/snapshot"
	"github.com/akhildatla/rpncalc/pkg/store"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// StateEnv overrides the default state file location.
const StateEnv = "RPNCALC_STATE"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		return printUsage(stdout)
	}

	cmd := args[0]
	rest := args[1:]

	switch cmd {
	case "repl":
		return replCommand(rest, stdin, stdout, stderr)
	case "eval":
		return evalCommand(rest, stdout, stderr)
	case "show":
		return showCommand(rest, stdout, stderr)
	case "export":
		return exportCommand(rest, stdout, stderr)
	case "import":
		return importCommand(rest, stdout, stderr)
	case "mcp":
		return mcpCommand(rest, stderr)
	case "version":
		fmt.Fprintf(stdout, "rpncalc version %s\n", version)
		if commit != "none" {
			fmt.Fprintf(stdout, "  commit: %s\n", commit)
		}
		if date != "unknown" {
			fmt.Fprintf(stdout, "  built:  %s\n", date)
		}
		return nil
	case "help", "-h", "--help":
		return printUsage(stdout)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// engineFlags are shared by every command that opens the state.
type engineFlags struct {
	state   *string
	verbose *bool
}

func addEngineFlags(fs *flag.FlagSet) *engineFlags {
	return &engineFlags{
		state:   fs.String("state", "", "state file (default: $"+StateEnv+" or <bin>/../../data/"+store.FileName+")"),
		verbose: fs.Bool("v", false, "verbose output"),
	}
}

func (f *engineFlags) open(stderr io.Writer) (*calc.Engine, *slog.Logger, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *f.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	path, err := statePath(*f.state)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("opening state", "path", path)

	e, err := calc.New(store.NewFileStore(path), calc.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return e, logger, nil
}

// statePath resolves the state location: flag, then environment, then the
// install-relative default.
func statePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(StateEnv); env != "" {
		return env, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return store.DefaultPath(exe), nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func replCommand(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := newFlagSet("repl", stderr)
	ef := addEngineFlags(fs)
	quiet := fs.Bool("q", false, "no banner or prompts (for piped input)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	e, logger, err := ef.open(stderr)
	if err != nil {
		return err
	}

	opts := []repl.Option{repl.WithLogger(logger)}
	if *quiet {
		opts = append(opts, repl.WithQuiet())
	}
	repl.New(e, opts...).Start(stdin, stdout)

	return e.Exit()
}

func evalCommand(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("eval", stderr)
	ef := addEngineFlags(fs)
	noSave := fs.Bool("n", false, "do not save the result")
	showVars := fs.Bool("vars", false, "also print the variables")

	if err := fs.Parse(args); err != nil {
		return err
	}

	e, _, err := ef.open(stderr)
	if err != nil {
		return err
	}

	if err := repl.Apply(e, fs.Args()); err != nil {
		return err
	}

	repl.PrintStack(stdout, e)
	if *showVars {
		repl.PrintVars(stdout, e)
	}

	if *noSave {
		return nil
	}
	return e.Exit()
}

func showCommand(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("show", stderr)
	ef := addEngineFlags(fs)
	showVars := fs.Bool("vars", false, "also print the variables")

	if err := fs.Parse(args); err != nil {
		return err
	}

	e, _, err := ef.open(stderr)
	if err != nil {
		return err
	}

	repl.PrintStack(stdout, e)
	if *showVars {
		repl.PrintVars(stdout, e)
	}
	return nil
}

func exportCommand(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("export", stderr)
	ef := addEngineFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: rpncalc export <file.csv|file.json|file.parquet>")
	}

	e, logger, err := ef.open(stderr)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	if err := snapshot.Export(context.Background(), path, e.State()); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	logger.Debug("exported state", "path", path)
	fmt.Fprintf(stdout, "Exported: %s\n", path)
	return nil
}

func importCommand(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("import", stderr)
	ef := addEngineFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: rpncalc import <file.csv|file.json|file.parquet>")
	}

	e, logger, err := ef.open(stderr)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	st, err := snapshot.Import(context.Background(), path)
	if err != nil {
		return fmt.Errorf("importing: %w", err)
	}
	e.Restore(st)
	logger.Debug("imported state", "path", path)

	if err := e.Exit(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Imported: %s\n", path)
	return nil
}

func mcpCommand(args []string, stderr io.Writer) error {
	fs := newFlagSet("mcp", stderr)
	ef := addEngineFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	e, logger, err := ef.open(stderr)
	if err != nil {
		return err
	}

	if err := mcp.NewServer(e, logger, version).ServeStdio(); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return e.Exit()
}

func printUsage(out io.Writer) error {
	fmt.Fprintln(out, `rpncalc - four-register RPN calculator

Usage:
  rpncalc <command> [arguments]

Commands:
  repl                  Start the interactive keypad
  eval <keys...>        Press keys, print the stack and save
  show                  Print the saved stack
  export <file>         Export state to .csv, .json or .parquet
  import <file>         Replace state from a .csv, .json or .parquet snapshot
  mcp                   Serve the calculator as MCP tools on stdio
  version               Print version information
  help                  Show this help message

Common Options:
  -state <file>         State file (default: $RPNCALC_STATE or <bin>/../../data/molkfreecalc.clc)
  -v                    Verbose output

REPL Options:
  -q                    No banner or prompts

Eval Options:
  -n                    Do not save the result
  -vars                 Also print the variables

Show Options:
  -vars                 Also print the variables

Examples:
  rpncalc eval 3 4 +
  rpncalc eval -- 10 -2,5 ×
  rpncalc eval 2 sqrt sto A
  rpncalc show -vars
  rpncalc export state.parquet
  rpncalc repl`)
	return nil
}
