/*
File   : golox/loxerr/loxerr.go

Package loxerr defines the single error type the interpreter raises for
Lox-level runtime failures (undefined variables, type mismatches,
uncallable values, arity mismatches — spec.md §4.6/§6). It carries the
offending token so the reporter can anchor the "[line N] Error: msg"
diagnostic without threading line numbers through every evaluation
function by hand, the same way the Python original's LoxRuntimeErr
pairs a token with a message.
*/
package loxerr

import "github.com/go-lox/golox/token"

// RuntimeError is a Lox-level runtime fault: it unwinds the Go call stack
// like any other error, but carries the token the interpreter was
// evaluating so the reporter can stamp the diagnostic with a line number.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// New constructs a RuntimeError anchored to tok.
func New(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}
