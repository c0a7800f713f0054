/*
File    : rpal/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Package repl implements the interactive Read-Eval-Print Loop for the
// RPAL interpreter: each line is parsed, standardized, flattened, and
// run as a standalone program against a shared primitive environment,
// mirroring go-mix/repl's structure (readline-backed editing, colorized
// banner and diagnostics) adapted from Go-Mix's persistent evaluator
// state to RPAL's stateless-between-lines execution model — RPAL has
// no top-level assignment outside a 'let'/'within' binding, so there is
// no REPL session state to carry from one line to the next beyond the
// fixed primitive table.
package repl

import (
	"io"
	"sort"
	"strings"

	"github.com/akashmaji946/rpal/builtins"
	"github.com/akashmaji946/rpal/control"
	"github.com/akashmaji946/rpal/cse"
	"github.com/akashmaji946/rpal/environment"
	"github.com/akashmaji946/rpal/parser"
	"github.com/akashmaji946/rpal/standardizer"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, separator
// line, and prompt string.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Enter an RPAL expression and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type :quit to exit, :env to list bound primitives.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop, reading from stdin via readline and
// writing the banner, results, and diagnostics to w. The prompt is
// shown by readline itself, not written to w.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	root := builtins.RootEnvironment(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Goodbye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			w.Write([]byte("Goodbye!\n"))
			return nil
		}
		if line == ":env" {
			r.printEnv(w, root)
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(w, line, root)
	}
}

func (r *Repl) printEnv(w io.Writer, root *environment.Environment) {
	names := make([]string, 0, len(root.Vars))
	for name := range root.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cyanColor.Fprintf(w, "%s\n", name)
	}
}

func (r *Repl) evalLine(w io.Writer, line string, root *environment.Environment) {
	tree, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	st, err := standardizer.Standardize(tree)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	deltas, err := control.Flatten(st)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	result, err := cse.Run(deltas, root)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	yellowColor.Fprintf(w, "%s\n", result.String())
}
