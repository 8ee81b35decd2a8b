/*
File   : golox/astprinter/printer.go

Package astprinter renders an Expr back to a canonical, fully
parenthesized textual form, grounded on the Python original's
ast_printer.py (_parenthesize helper) and the teacher's print_visitor.go
PrintingVisitor — one more ExprVisitor sharing the same AST the
interpreter walks. spec.md's Open Questions flags a known bug in the
source AstPrinter: its Variable case dereferences a class attribute
rather than the instance's name, producing the same text for every
variable reference. This implementation renders e.Name.Lexeme from the
instance, which is the fix spec.md calls for.
*/
package astprinter

import (
	"strings"

	"github.com/go-lox/golox/ast"
	"github.com/go-lox/golox/value"
)

// Printer implements ast.ExprVisitor, producing a Lisp-like
// `(op operand...)` rendering of an expression tree.
type Printer struct{}

// Print renders e in canonical parenthesized form.
func Print(e ast.Expr) string {
	p := &Printer{}
	s, _ := e.AcceptExpr(p)
	return string(s.(value.String))
}

func (p *Printer) parenthesize(name string, exprs ...ast.Expr) value.Value {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		v, _ := e.AcceptExpr(p)
		b.WriteString(string(v.(value.String)))
	}
	b.WriteByte(')')
	return value.String(b.String())
}

func (p *Printer) VisitLiteral(e *ast.Literal) (value.Value, error) {
	return value.String(value.Stringify(e.Value)), nil
}

func (p *Printer) VisitGrouping(e *ast.Grouping) (value.Value, error) {
	return p.parenthesize("group", e.Inner), nil
}

func (p *Printer) VisitUnary(e *ast.Unary) (value.Value, error) {
	return p.parenthesize(e.Op.Lexeme, e.Right), nil
}

func (p *Printer) VisitBinary(e *ast.Binary) (value.Value, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right), nil
}

func (p *Printer) VisitLogical(e *ast.Logical) (value.Value, error) {
	return p.parenthesize(e.Op.Lexeme, e.Left, e.Right), nil
}

// VisitVariable renders e.Name.Lexeme — the fix for the Open Questions
// bug: the instance's own name, not a value shared across call sites.
func (p *Printer) VisitVariable(e *ast.Variable) (value.Value, error) {
	return value.String(e.Name.Lexeme), nil
}

func (p *Printer) VisitAssign(e *ast.Assign) (value.Value, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value), nil
}

func (p *Printer) VisitCall(e *ast.Call) (value.Value, error) {
	return p.parenthesize("call", append([]ast.Expr{e.Callee}, e.Args...)...), nil
}
