/*
File   : golox/callable/callable.go

Package callable holds the two kinds of invocable Lox value that close
over interpreter state: user-defined functions (LoxFunction, grounded on
the teacher's function.Function — a closure-capturing struct holding the
declaration and its defining scope) and the native clock function
(grounded on the Python original's Clock(LoxCallable) / spec.md's
supplemented-features list). Native leans on value.Native, the generic
mechanism already defined in package value; LoxFunction needs its own
type because calling it must re-enter the interpreter to execute a
statement body, which value.Native's signature (a plain Go func) cannot
express without the runner hook below.
*/
package callable

import (
	"time"

	"github.com/go-lox/golox/ast"
	"github.com/go-lox/golox/environment"
	"github.com/go-lox/golox/value"
)

// Runner is the slice of *interpreter.Interpreter that LoxFunction.Call
// needs. Typing against this interface instead of the concrete
// interpreter type avoids a callable->interpreter->callable import
// cycle: the interpreter package implements Runner implicitly and
// passes itself as the `interp any` argument of value.Callable.Call.
type Runner interface {
	CallFunction(closure *environment.Environment, params []string, body []ast.Stmt, args []value.Value) (value.Value, error)
}

// LoxFunction is a user-defined function value: the parsed declaration
// plus the environment in which it was declared, captured by reference
// so the closure sees later mutations of its enclosing scope.
type LoxFunction struct {
	Name    string
	Params  []string
	Body    []ast.Stmt
	Closure *environment.Environment
}

// New builds a LoxFunction from a parsed function declaration.
func New(name string, params []string, body []ast.Stmt, closure *environment.Environment) *LoxFunction {
	return &LoxFunction{Name: name, Params: params, Body: body, Closure: closure}
}

func (*LoxFunction) isValue() {}

func (f *LoxFunction) Arity() int { return len(f.Params) }

// Call type-asserts interp to Runner and delegates the actual body
// execution to the interpreter, which alone knows how to run statements
// and unwind a return. This is the same division of labor as the
// teacher's eval.CallFunction: the callable describes the closure, the
// evaluator drives execution.
func (f *LoxFunction) Call(interp any, args []value.Value) (value.Value, error) {
	runner := interp.(Runner)
	return runner.CallFunction(f.Closure, f.Params, f.Body, args)
}

func (f *LoxFunction) String() string {
	return "<fn " + f.Name + ">"
}

// Clock builds the native `clock()` global (spec.md's supplemented
// features, §5): it returns the number of seconds since the Unix epoch
// as a Lox Number, with zero arity.
func Clock() *value.Native {
	return &value.Native{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(_ []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}
