/*
File   : golox/environment/environment.go

Package environment implements Lox's lexically-scoped variable bindings:
a chain of frames, each pointing at its enclosing frame, the same shape
as the teacher's scope.Scope — trimmed of GoMix's const/let/type
tracking, which Lox has no use for, since every Lox binding is a plain
mutable `var`.
*/
package environment

import (
	"fmt"

	"github.com/go-lox/golox/loxerr"
	"github.com/go-lox/golox/token"
	"github.com/go-lox/golox/value"
)

// Environment is one lexical scope frame. The global scope is the
// Environment with a nil Parent.
type Environment struct {
	Parent  *Environment
	values  map[string]value.Value
}

// New creates a top-level (global) environment.
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewChild creates a new scope enclosed by parent, as happens on block
// entry and on every function call.
func NewChild(parent *Environment) *Environment {
	return &Environment{Parent: parent, values: make(map[string]value.Value)}
}

// Define binds name to v in this frame. Re-declaring an existing name in
// the same frame is allowed (Lox permits shadowing a var with another
// var in the same scope), matching the REPL-friendly semantics spec.md
// describes.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name, walking outward through enclosing frames. It
// reports a RuntimeError anchored to tok if the name is bound nowhere in
// the chain.
func (e *Environment) Get(tok token.Token) (value.Value, error) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.values[tok.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, loxerr.New(tok, fmt.Sprintf("Undefined variable '%s'.", tok.Lexeme))
}

// Assign rebinds an already-declared name, walking outward through
// enclosing frames until it finds the frame that declared it. It never
// creates a new binding; assigning to an undeclared name is a
// RuntimeError anchored to tok.
func (e *Environment) Assign(tok token.Token, v value.Value) error {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.values[tok.Lexeme]; ok {
			env.values[tok.Lexeme] = v
			return nil
		}
	}
	return loxerr.New(tok, fmt.Sprintf("Undefined variable '%s'.", tok.Lexeme))
}
