/*
File    : rpal/cmd/rpal/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
// Command rpal is the entry point for the RPAL interpreter.
// It provides two modes of operation:
// 1. File mode: execute (or print the tree for) a single RPAL source file
// 2. REPL mode (default, no file argument): interactive read-eval-print loop
//
// The interpreter runs the lexer-parser-standardizer-flattener-CSE
// pipeline, mirroring go-mix/main's os.Args switch rather than a
// flag-parsing library.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/rpal/ast"
	"github.com/akashmaji946/rpal/builtins"
	"github.com/akashmaji946/rpal/control"
	"github.com/akashmaji946/rpal/cse"
	"github.com/akashmaji946/rpal/parser"
	"github.com/akashmaji946/rpal/repl"
	"github.com/akashmaji946/rpal/standardizer"
	"github.com/fatih/color"
)

// VERSION is the current version of the RPAL interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "rpal> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
    ▄▄▄▄                       ▄▄▄
  ██▀▀▀▀█                      ███       ██████╗ ██████╗  █████╗ ██╗
 ██         ▄████▄             ███████   ██╔══██╗██╔══██╗██╔══██╗██║
 ██  ▄▄▄▄  ██▀  ▀██   	       ██ ██ ██  ██████╔╝██████╔╝███████║██║
 ██  ▀▀██  ██    ██   █████    ██ ▀▀ ██  ██╔══██╗██╔═══╝ ██╔══██║██║
  ██▄▄▄██  ▀██▄▄██▀            ██    ██  ██║  ██║██║     ██║  ██║███████╗
    ▀▀▀▀     ▀▀▀▀              ▀▀    ▀▀  ╚═╝  ╚═╝╚═╝     ╚═╝  ╚═╝╚══════╝
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main parses the command line, per spec §6:
//
//	rpal [-ast] [-st] <file>   - execute or print the tree for a file
//	rpal                       - start the interactive REPL
//	rpal -h | --help           - usage summary
//	rpal -v | --version        - version string
func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		r := repl.New(BANNER, VERSION, AUTHOR, LINE, PROMPT)
		if err := r.Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "REPL error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var showAst, showSt bool
	var file string

	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			showHelp()
			os.Exit(0)
		case "-v", "--version":
			showVersion()
			os.Exit(0)
		case "-ast":
			showAst = true
		case "-st":
			showSt = true
		default:
			if file != "" {
				redColor.Fprintf(os.Stderr, "UsageError: multiple file arguments given (%q and %q)\n", file, arg)
				os.Exit(1)
			}
			file = arg
		}
	}

	if file == "" {
		redColor.Fprintf(os.Stderr, "UsageError: no source file given\n")
		os.Exit(1)
	}

	os.Exit(runFile(file, showAst, showSt))
}

// runFile reads and runs a single source file through the full
// pipeline, printing the requested trees and/or the program's output.
// It returns the process exit code: 0 on success, nonzero on any
// lexical, syntactic, or runtime error.
func runFile(filename string, showAst, showSt bool) int {
	source, err := os.ReadFile(filename)
	if err != nil {
		redColor.Fprintf(os.Stderr, "FileError: could not read %q: %v\n", filename, err)
		return 1
	}

	tree, err := parser.Parse(string(source))
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	if showAst {
		fmt.Print(ast.Print(tree))
	}

	st, err := standardizer.Standardize(tree)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	if showSt {
		fmt.Print(ast.Print(st))
	}

	deltas, err := control.Flatten(st)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	root := builtins.RootEnvironment(os.Stdout)
	if _, err := cse.Run(deltas, root); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	return 0
}

func showHelp() {
	cyanColor.Println("rpal - An RPAL interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  rpal                  Start interactive REPL mode")
	fmt.Println("  rpal <file>           Execute an RPAL source file")
	fmt.Println("  rpal -ast <file>      Print the parse tree in dotted pre-order form")
	fmt.Println("  rpal -st <file>       Print the standardized tree in dotted pre-order form")
	fmt.Println("  rpal -h, --help       Display this help message")
	fmt.Println("  rpal -v, --version    Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	fmt.Println("  :quit                 Exit the REPL")
	fmt.Println("  :env                  List the bound primitive names")
}

func showVersion() {
	cyanColor.Printf("rpal version %s\n", VERSION)
	cyanColor.Printf("Author: %s\n", AUTHOR)
}
