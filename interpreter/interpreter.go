/*
File   : golox/interpreter/interpreter.go

Package interpreter implements the tree-walking evaluator (spec.md
§4.6): it walks the AST via the ExprVisitor/StmtVisitor double dispatch
and produces side effects (print, stdout) and a single propagating
*loxerr.RuntimeError on failure. Statement/expression evaluation mirror
the teacher's eval.Evaluator (its Scp field becomes env here, its
CallFunction becomes the method of the same name used to satisfy
callable.Runner) and the Python interpret.py's visit_* methods, with two
deliberate divergences documented in SPEC_FULL.md: Binary evaluates left
operand before right (spec.md §4.6, the opposite of the Python source),
and `return` is implemented as a non-error unwind (spec.md's Open
Questions, following Crafting Interpreters ch. 10) since the Python
original never finished it.
*/
package interpreter

import (
	"io"
	"strconv"

	"github.com/go-lox/golox/ast"
	"github.com/go-lox/golox/callable"
	"github.com/go-lox/golox/environment"
	"github.com/go-lox/golox/loxerr"
	"github.com/go-lox/golox/reporter"
	"github.com/go-lox/golox/token"
	"github.com/go-lox/golox/value"
)

// returnSignal carries a `return` statement's value up the Go call
// stack to the enclosing CallFunction boundary. It is not a
// *loxerr.RuntimeError: it is expected control flow, not a diagnostic.
type returnSignal struct {
	value value.Value
}

func (returnSignal) Error() string { return "return" }

// Interpreter walks statements/expressions against a chain of
// environments rooted at globals. Stdout is a Writer so tests can
// capture `print` output without touching the real process stdout.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	rep     reporter.Reporter
	stdout  io.Writer
}

// New creates an Interpreter whose global scope is pre-populated with
// the native callables spec.md §3 requires (at least `clock`).
func New(rep reporter.Reporter, stdout io.Writer) *Interpreter {
	globals := environment.New()
	globals.Define("clock", callable.Clock())
	return &Interpreter{globals: globals, env: globals, rep: rep, stdout: stdout}
}

// Interpret executes stmts in order. A runtime error aborts the
// remaining batch and is reported once, matching spec.md §4.6's
// contract; it never panics out to the caller.
func (in *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			if rerr, ok := err.(*loxerr.RuntimeError); ok {
				in.rep.Runtime(rerr.Token, rerr.Message)
			}
			return
		}
	}
}

func (in *Interpreter) execute(s ast.Stmt) error {
	return s.AcceptStmt(in)
}

func (in *Interpreter) evaluate(e ast.Expr) (value.Value, error) {
	return e.AcceptExpr(in)
}

// --- statements ---

func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := in.evaluate(s.Expr)
	return err
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := in.evaluate(s.Expr)
	if err != nil {
		return err
	}
	io.WriteString(in.stdout, value.Stringify(v)+"\n")
	return nil
}

func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	v, err := in.evaluate(s.Initializer)
	if err != nil {
		return err
	}
	in.env.Define(s.Name.Lexeme, v)
	return nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return in.executeBlock(s.Stmts, environment.NewChild(in.env))
}

// executeBlock pushes child, runs stmts, and restores the previous
// environment on every exit path — success, runtime error, or a
// propagating return — per spec.md §5's restoration requirement.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, child *environment.Environment) error {
	previous := in.env
	in.env = child
	defer func() { in.env = previous }()

	for _, st := range stmts {
		if err := in.execute(st); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := in.evaluate(s.Cond)
	if err != nil {
		return err
	}
	switch {
	case value.Truthy(cond):
		return in.execute(s.Then)
	case s.Else != nil:
		return in.execute(s.Else)
	default:
		return nil
	}
}

func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if !value.Truthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	fn := callable.New(s.Name.Lexeme, params, s.Body, in.env)
	in.env.Define(s.Name.Lexeme, fn)
	return nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	v := value.Value(value.Nil{})
	if s.Value != nil {
		var err error
		v, err = in.evaluate(s.Value)
		if err != nil {
			return err
		}
	}
	return returnSignal{value: v}
}

// --- expressions ---

func (in *Interpreter) VisitLiteral(e *ast.Literal) (value.Value, error) {
	return e.Value, nil
}

func (in *Interpreter) VisitGrouping(e *ast.Grouping) (value.Value, error) {
	return in.evaluate(e.Inner)
}

func (in *Interpreter) VisitUnary(e *ast.Unary) (value.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, loxerr.New(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return value.Boolean(!value.Truthy(right)), nil
	default:
		return nil, loxerr.New(e.Op, "Unknown unary operator.")
	}
}

// VisitBinary evaluates the left operand, then the right (spec.md
// §4.6's fully-specified evaluation order), then applies the operator.
func (in *Interpreter) VisitBinary(e *ast.Binary) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Minus:
		return numOp(e.Op, left, right, func(a, b float64) float64 { return a - b })
	case token.Slash:
		return numOp(e.Op, left, right, func(a, b float64) float64 { return a / b })
	case token.Star:
		return numOp(e.Op, left, right, func(a, b float64) float64 { return a * b })
	case token.Plus:
		return addOp(e.Op, left, right)
	case token.Greater:
		return cmpOp(e.Op, left, right, func(a, b float64) bool { return a > b })
	case token.GreaterEqual:
		return cmpOp(e.Op, left, right, func(a, b float64) bool { return a >= b })
	case token.Less:
		return cmpOp(e.Op, left, right, func(a, b float64) bool { return a < b })
	case token.LessEqual:
		return cmpOp(e.Op, left, right, func(a, b float64) bool { return a <= b })
	case token.EqualEqual:
		return value.Boolean(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Boolean(!value.Equal(left, right)), nil
	default:
		return nil, loxerr.New(e.Op, "Unknown binary operator.")
	}
}

func numOp(op token.Token, left, right value.Value, fn func(a, b float64) float64) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return nil, loxerr.New(op, "Operands must be numbers.")
	}
	return value.Number(fn(float64(ln), float64(rn))), nil
}

func cmpOp(op token.Token, left, right value.Value, fn func(a, b float64) bool) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return nil, loxerr.New(op, "Operands must be numbers.")
	}
	return value.Boolean(fn(float64(ln), float64(rn))), nil
}

func addOp(op token.Token, left, right value.Value) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return ls + rs, nil
		}
	}
	return nil, loxerr.New(op, "Operands must be two numbers or two strings.")
}

// VisitLogical short-circuits and returns the operand value itself, not
// a coerced boolean (spec.md §4.5).
func (in *Interpreter) VisitLogical(e *ast.Logical) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.Or {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) VisitVariable(e *ast.Variable) (value.Value, error) {
	return in.env.Get(e.Name)
}

func (in *Interpreter) VisitAssign(e *ast.Assign) (value.Value, error) {
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := in.env.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

// VisitCall evaluates the callee, then each argument left-to-right
// (spec.md §4.6), before checking callability and arity.
func (in *Interpreter) VisitCall(e *ast.Call) (value.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(value.Callable)
	if !ok {
		return nil, loxerr.New(e.Paren, "Can only call functions and classes.")
	}
	if fn.Arity() != len(args) {
		return nil, loxerr.New(e.Paren, arityMessage(fn.Arity(), len(args)))
	}
	return fn.Call(in, args)
}

func arityMessage(want, got int) string {
	return "Expected " + strconv.Itoa(want) + " arguments but got " + strconv.Itoa(got) + "."
}

// CallFunction implements callable.Runner: it binds params to args in a
// fresh child of closure, executes body, and unwraps a propagating
// returnSignal into its carried value (Nil if the function falls off
// the end without an explicit return).
func (in *Interpreter) CallFunction(closure *environment.Environment, params []string, body []ast.Stmt, args []value.Value) (value.Value, error) {
	callEnv := environment.NewChild(closure)
	for i, p := range params {
		callEnv.Define(p, args[i])
	}

	previous := in.env
	in.env = callEnv
	defer func() { in.env = previous }()

	for _, st := range body {
		err := in.execute(st)
		if err == nil {
			continue
		}
		if rs, ok := err.(returnSignal); ok {
			return rs.value, nil
		}
		return nil, err
	}
	return value.Nil{}, nil
}
