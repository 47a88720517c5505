// Package repl is a line-oriented keypad for the calculator engine.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/akhildatla/rpncalc/pkg/calc"
)

const prompt = "rpn> "

var stackLabels = []string{"T", "Z", "Y", "X", ">"}

// REPL provides an interactive Read-Eval-Print Loop over one engine.
type REPL struct {
	engine  *calc.Engine
	logger  *slog.Logger
	history []string
	quiet   bool
	done    bool
}

// Option configures a REPL.
type Option func(*REPL)

// WithLogger sets the REPL logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *REPL) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithQuiet suppresses the banner and prompts, for piped input.
func WithQuiet() Option {
	return func(r *REPL) {
		r.quiet = true
	}
}

// New creates a REPL driving engine.
func New(engine *calc.Engine, opts ...Option) *REPL {
	r := &REPL{
		engine:  engine,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		history: []string{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start runs the loop until quit or end of input. It does not save; the
// caller owns the engine lifecycle.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	if !r.quiet {
		fmt.Fprintln(out, "rpncalc - four-register RPN calculator")
		fmt.Fprintln(out, "Type 'help' for available keys, 'quit' to exit")
		fmt.Fprintln(out)
		PrintStack(out, r.engine)
	}

	for !r.done {
		if !r.quiet {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := scanner.Text()
		if handled := r.handleCommand(line, out); handled {
			continue
		}
		r.eval(line, out)
	}
}

func (r *REPL) handleCommand(line string, out io.Writer) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	if len(parts) > 1 {
		return false
	}

	switch parts[0] {
	case "quit", "exit", "q":
		fmt.Fprintln(out, "Goodbye!")
		r.done = true
		return true

	case "help", "h", "?":
		r.printHelp(out)
		return true

	case "stack":
		PrintStack(out, r.engine)
		return true

	case "vars":
		PrintVars(out, r.engine)
		return true

	case "history":
		for i, cmd := range r.history {
			fmt.Fprintf(out, "%3d: %s\n", i+1, cmd)
		}
		return true
	}

	return false
}

func (r *REPL) eval(line string, out io.Writer) {
	r.history = append(r.history, line)

	if err := Apply(r.engine, strings.Fields(line)); err != nil {
		r.logger.Debug("key sequence failed", "line", line, "err", err)
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	PrintStack(out, r.engine)
}

// PrintStack writes the stack view with register labels.
func PrintStack(out io.Writer, e *calc.Engine) {
	for i, line := range strings.Split(e.StackString(), "\n") {
		fmt.Fprintf(out, "%s: %s\n", stackLabels[i], line)
	}
}

// PrintVars writes the variable view with slot names. The last line is the
// selected variable.
func PrintVars(out io.Writer, e *calc.Engine) {
	lines := strings.Split(e.VarString(), "\n")
	for i, line := range lines[:calc.NumVars] {
		fmt.Fprintf(out, "%s: %s\n", calc.VarName(i), line)
	}
	fmt.Fprintf(out, "selected: %s\n", lines[calc.NumVars])
}

func (r *REPL) printHelp(out io.Writer) {
	help := `
rpncalc keys:
  3  -2,5  1.5     Type a number and enter it
  #12              Type digits into the entry without entering
  ,  .             Decimal separator
  chs              Change sign of the entry
  enter            Enter the entry into X
  clx              Clear the entry
  drop roll swap   Move the stack
  sto A / rcl A    Store X in / recall from variable A..H

Operators:
  + − × ÷ yˣ ˣ√y              (aliases: - * / ^ root)
  x² √x log x ln x 10ˣ eˣ     (aliases: sq sqrt log ln alog exp)
  sin cos tan sin⁻¹ cos⁻¹ tan⁻¹  (aliases: asin acos atan)
  π e                          (alias: pi)

Commands:
  stack, vars, history, help, quit

Example:
  3 4 +            X = 7
  2 sqrt sto A     A = 1.4142135623730951
`
	fmt.Fprint(out, help)
}
