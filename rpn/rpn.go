/*
File   : golox/rpn/rpn.go

Package rpn converts an expression tree into Reverse Polish Notation, a
second alternate pass sharing the same ast.ExprVisitor double dispatch
as astprinter and interpreter (spec.md §4.3's requirement that multiple
passes share the AST without modification). Grounded on the same
printer-visitor shape as astprinter.Printer.
*/
package rpn

import (
	"strings"

	"github.com/go-lox/golox/ast"
	"github.com/go-lox/golox/value"
)

// Converter implements ast.ExprVisitor, rendering postfix notation.
type Converter struct{}

// Convert renders e in reverse Polish (postfix) notation.
func Convert(e ast.Expr) string {
	c := &Converter{}
	v, _ := e.AcceptExpr(c)
	return string(v.(value.String))
}

func (c *Converter) postfix(op string, exprs ...ast.Expr) value.Value {
	var parts []string
	for _, e := range exprs {
		v, _ := e.AcceptExpr(c)
		parts = append(parts, string(v.(value.String)))
	}
	parts = append(parts, op)
	return value.String(strings.Join(parts, " "))
}

func (c *Converter) VisitLiteral(e *ast.Literal) (value.Value, error) {
	return value.String(value.Stringify(e.Value)), nil
}

func (c *Converter) VisitGrouping(e *ast.Grouping) (value.Value, error) {
	return e.Inner.AcceptExpr(c)
}

func (c *Converter) VisitUnary(e *ast.Unary) (value.Value, error) {
	return c.postfix(e.Op.Lexeme, e.Right), nil
}

func (c *Converter) VisitBinary(e *ast.Binary) (value.Value, error) {
	return c.postfix(e.Op.Lexeme, e.Left, e.Right), nil
}

func (c *Converter) VisitLogical(e *ast.Logical) (value.Value, error) {
	return c.postfix(e.Op.Lexeme, e.Left, e.Right), nil
}

func (c *Converter) VisitVariable(e *ast.Variable) (value.Value, error) {
	return value.String(e.Name.Lexeme), nil
}

func (c *Converter) VisitAssign(e *ast.Assign) (value.Value, error) {
	return c.postfix("= "+e.Name.Lexeme, e.Value), nil
}

func (c *Converter) VisitCall(e *ast.Call) (value.Value, error) {
	return c.postfix("call", append([]ast.Expr{e.Callee}, e.Args...)...), nil
}
