/*
File   : golox/repl/repl.go

Package repl implements Lox's interactive Read-Eval-Print Loop (spec.md
§6): prompt "> ", one physical line treated as a complete program per
iteration, EOF on stdin terminates, and errors never terminate the
session. Line editing and history come from the same
github.com/chzyer/readline the teacher's repl.Repl uses; the banner lines
are colored blue/green/cyan, directly following
repl.Repl.PrintBannerInfo's palette. Diagnostics are written to errOut
uncolored, in the reporter's plain one-line format.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/go-lox/golox/interpreter"
	"github.com/go-lox/golox/lexer"
	"github.com/go-lox/golox/parser"
	"github.com/go-lox/golox/reporter"
)

var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

const prompt = "> "

// Repl is a stateful interactive session: declarations and assignments
// made on one line remain visible to later lines, since a single
// Interpreter (and its global Environment) is reused across iterations.
type Repl struct {
	Banner  string
	Version string
}

// New creates a Repl with an optional startup banner.
func New(banner, version string) *Repl {
	return &Repl{Banner: banner, Version: version}
}

// PrintBanner writes the startup banner to w, following the teacher's
// blue/green/cyan palette.
func (r *Repl) PrintBanner(w io.Writer) {
	if r.Banner == "" {
		return
	}
	blueColor.Fprintln(w, strings.Repeat("-", 40))
	greenColor.Fprintln(w, r.Banner)
	if r.Version != "" {
		cyanColor.Fprintln(w, "golox "+r.Version)
	}
	blueColor.Fprintln(w, strings.Repeat("-", 40))
}

// Run starts the main loop, reading from stdin via readline and writing
// program output and diagnostics to out/errOut respectively. It returns
// when stdin reaches EOF.
func (r *Repl) Run(out, errOut io.Writer) error {
	r.PrintBanner(out)

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	rep := reporter.NewConsole(errOut)
	in := interpreter.New(rep, out)

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil // EOF (Ctrl+D) or readline interrupt ends the session
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		rl.SaveHistory(line)

		r.runLine(in, rep, line)
		// Clear had-error (but not had-runtime-error) after each line,
		// per spec.md §6.
		rep.Reset()
	}
}

func (r *Repl) runLine(in *interpreter.Interpreter, rep reporter.Reporter, line string) {
	lx := lexer.New(line, rep)
	toks := lx.ScanTokens()
	if rep.HadError() {
		return
	}

	p := parser.New(toks, rep)
	stmts, ok := p.Parse()
	if !ok {
		return
	}

	in.Interpret(stmts)
}
