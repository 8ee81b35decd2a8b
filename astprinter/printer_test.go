package astprinter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-lox/golox/ast"
	"github.com/go-lox/golox/token"
	"github.com/go-lox/golox/value"
)

func TestPrint_BinaryOfLiterals(t *testing.T) {
	expr := &ast.Binary{
		Left:  &ast.Unary{Op: token.New(token.Minus, "-", nil, 1), Right: &ast.Literal{Value: value.Number(123)}},
		Op:    token.New(token.Star, "*", nil, 1),
		Right: &ast.Grouping{Inner: &ast.Literal{Value: value.Number(45.67)}},
	}
	assert.Equal(t, "(* (- 123) (group 45.67))", Print(expr))
}

// TestPrint_VariableUsesInstanceName guards against the Open Questions
// bug: two distinct Variable nodes must print their own names, not a
// value shared across every instance.
func TestPrint_VariableUsesInstanceName(t *testing.T) {
	a := &ast.Variable{Name: token.New(token.Identifier, "alpha", nil, 1)}
	b := &ast.Variable{Name: token.New(token.Identifier, "beta", nil, 1)}

	assert.Equal(t, "alpha", Print(a))
	assert.Equal(t, "beta", Print(b))
}

func TestPrint_Call(t *testing.T) {
	expr := &ast.Call{
		Callee: &ast.Variable{Name: token.New(token.Identifier, "f", nil, 1)},
		Paren:  token.New(token.RightParen, ")", nil, 1),
		Args:   []ast.Expr{&ast.Literal{Value: value.Number(1)}, &ast.Literal{Value: value.Number(2)}},
	}
	assert.Equal(t, "(call f 1 2)", Print(expr))
}
