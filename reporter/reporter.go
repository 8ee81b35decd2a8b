/*
File   : golox/reporter/reporter.go

Package reporter implements the diagnostic collection point shared by the
scanner, parser and interpreter (spec.md §2's "shared diagnostic
reporter"). Every stage reports through this interface rather than
letting panics or Go errors escape to its caller (the parser's internal
sentinel panic and the interpreter's propagating runtime errors are
caught inside their own stage and reported here), matching the way the
teacher's Parser collects into Errors []string and the evaluator's
CreateError stamps position info, generalized here to all three pipeline
stages and given the §6 one-line wire format.
*/
package reporter

import (
	"fmt"
	"io"

	"github.com/go-lox/golox/token"
)

// Reporter receives diagnostics from the scanner, parser and interpreter.
// It never panics and never aborts the pipeline itself; callers decide
// what to do with HadError/HadRuntimeError after a stage completes.
type Reporter interface {
	// Lexical reports a scanner-stage diagnostic at the given line.
	Lexical(line int, message string)
	// Syntax reports a parser-stage diagnostic anchored to a token.
	Syntax(tok token.Token, message string)
	// Runtime reports an interpreter-stage diagnostic anchored to a token.
	Runtime(tok token.Token, message string)

	// HadError reports whether any lexical or syntax diagnostic fired
	// since the last Reset.
	HadError() bool
	// HadRuntimeError reports whether a runtime diagnostic fired since
	// the last ResetRuntime.
	HadRuntimeError() bool
	// Reset clears HadError. Used by the REPL after each line (spec.md
	// §6: "After each line, clear the had-error flag").
	Reset()
	// ResetRuntime clears HadRuntimeError.
	ResetRuntime()
}

// Console is the default Reporter: it writes the spec.md §6 one-line
// format to an io.Writer (stderr in normal operation) and tracks the two
// sticky flags the CLI driver gates exit codes on.
type Console struct {
	w               io.Writer
	hadError        bool
	hadRuntimeError bool
}

// NewConsole creates a Console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Lexical(line int, message string) {
	c.report(line, "", message)
	c.hadError = true
}

func (c *Console) Syntax(tok token.Token, message string) {
	if tok.Kind == token.EOF {
		c.report(tok.Line, " at end", message)
	} else {
		c.report(tok.Line, " at '"+tok.Lexeme+"'", message)
	}
	c.hadError = true
}

func (c *Console) Runtime(tok token.Token, message string) {
	c.report(tok.Line, "", message)
	c.hadRuntimeError = true
}

func (c *Console) report(line int, where, message string) {
	fmt.Fprintf(c.w, "[line %d] Error%s: %s\n", line, where, message)
}

func (c *Console) HadError() bool        { return c.hadError }
func (c *Console) HadRuntimeError() bool { return c.hadRuntimeError }

func (c *Console) Reset()        { c.hadError = false }
func (c *Console) ResetRuntime() { c.hadRuntimeError = false }
