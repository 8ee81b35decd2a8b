/*
File   : golox/cmd/golox/main.go

Command golox is the thin CLI driver spec.md §6 specifies at the
interface level: no args starts the REPL, one positional argument runs
that file in batch mode, more than one is a usage error. Exit codes
follow the BSD sysexits convention spec.md names explicitly: 65 for any
lexical/syntax error, 70 for an unrecovered runtime error (or a REPL
that fails to start), 64 for a usage error or an unreadable script
file, 0 otherwise.
Dispatch and banner constants follow the shape of the teacher's
main/main.go, trimmed to the surface spec.md actually calls for (no
--version/--help/server mode, which have no grounding in spec.md or the
Python original).
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/go-lox/golox/interpreter"
	"github.com/go-lox/golox/lexer"
	"github.com/go-lox/golox/parser"
	"github.com/go-lox/golox/repl"
	"github.com/go-lox/golox/reporter"
)

const (
	exitOK       = 0
	exitDataErr  = 65
	exitSoftware = 70
	exitUsage    = 64
)

var banner = `  _
 | | _____  __
 | |/ _ \ \/ /
 | | (_) >  <
 |_|\___/_/\_\`

const version = "0.1.0"

var redColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch len(args) {
	case 0:
		if err := repl.New(banner, version).Run(os.Stdout, os.Stderr); err != nil {
			redColor.Fprintln(os.Stderr, err)
			return exitSoftware
		}
		return exitOK
	case 1:
		return runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		return exitUsage
	}
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	rep := reporter.NewConsole(os.Stderr)

	lx := lexer.New(string(src), rep)
	toks := lx.ScanTokens()
	if rep.HadError() {
		return exitDataErr
	}

	p := parser.New(toks, rep)
	stmts, ok := p.Parse()
	if !ok {
		return exitDataErr
	}

	in := interpreter.New(rep, os.Stdout)
	in.Interpret(stmts)
	if rep.HadRuntimeError() {
		return exitSoftware
	}
	return exitOK
}
