/*
File   : golox/ast/ast.go

Package ast defines the closed set of expression and statement node
types that make up a parsed Lox program (spec.md §3), plus the
double-dispatch visitor interfaces that let the printer, the RPN
converter and the interpreter all walk the same tree without the tree
knowing about any of them. This is the same NodeVisitor shape the
teacher's parser/node.go uses, narrowed to the variants spec.md names.
*/
package ast

import (
	"github.com/go-lox/golox/token"
	"github.com/go-lox/golox/value"
)

// Expr is implemented by every expression node. AcceptExpr forwards to
// the variant-specific visitor method, giving double dispatch without a
// type switch at every call site.
type Expr interface {
	AcceptExpr(v ExprVisitor) (value.Value, error)
}

// Stmt is implemented by every statement node.
type Stmt interface {
	AcceptStmt(v StmtVisitor) error
}

// ExprVisitor is implemented by any pass over expressions: the
// interpreter, the AST printer, the RPN converter.
type ExprVisitor interface {
	VisitLiteral(e *Literal) (value.Value, error)
	VisitGrouping(e *Grouping) (value.Value, error)
	VisitUnary(e *Unary) (value.Value, error)
	VisitBinary(e *Binary) (value.Value, error)
	VisitLogical(e *Logical) (value.Value, error)
	VisitVariable(e *Variable) (value.Value, error)
	VisitAssign(e *Assign) (value.Value, error)
	VisitCall(e *Call) (value.Value, error)
}

// StmtVisitor is implemented by any pass over statements: only the
// interpreter needs one today, but the interface keeps the door open the
// same way the teacher's visitor covers every statement node.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
}

// --- Expressions ---

// Literal is a constant value baked into the AST at parse time.
type Literal struct {
	Value value.Value
}

func (e *Literal) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitLiteral(e) }

// Grouping is a parenthesized sub-expression, kept distinct from its
// inner expression so the printer can show the parens explicitly.
type Grouping struct {
	Inner Expr
}

func (e *Grouping) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitGrouping(e) }

// Unary is a prefix operator application: `-x` or `!x`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (e *Unary) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitUnary(e) }

// Binary is an infix arithmetic/comparison/equality operator application.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Binary) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitBinary(e) }

// Logical is `and`/`or`, kept distinct from Binary because it
// short-circuits instead of always evaluating both operands.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *Logical) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitLogical(e) }

// Variable is a reference to a bound name.
type Variable struct {
	Name token.Token
}

func (e *Variable) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitVariable(e) }

// Assign is `name = value`; the parser guarantees Name.Kind is
// token.Identifier (the left-hand side was itself a Variable node).
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitAssign(e) }

// Call is a function invocation. Paren is the closing ')' token, used
// only to anchor call-site runtime errors to a source location.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (e *Call) AcceptExpr(v ExprVisitor) (value.Value, error) { return v.VisitCall(e) }

// --- Statements ---

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its rendered form to
// standard output.
type PrintStmt struct {
	Expr Expr
}

func (s *PrintStmt) AcceptStmt(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares a new binding. Initializer is never nil: the parser
// fills in a Literal(Nil) when the source omits `= expr`.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) AcceptStmt(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt groups statements under a fresh lexical scope.
type BlockStmt struct {
	Stmts []Stmt
}

func (s *BlockStmt) AcceptStmt(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt is a conditional; Else is nil when no `else` clause is present.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (s *IfStmt) AcceptStmt(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt is a condition-first loop. `for` desugars into this (spec.md
// §4.2) rather than getting its own node.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) AcceptStmt(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) AcceptStmt(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds to the enclosing function call boundary. Value is
// nil when the source `return;` supplies no expression (the interpreter
// then yields Nil, per spec.md's Open Questions / ch. 10 convention).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) AcceptStmt(v StmtVisitor) error { return v.VisitReturnStmt(s) }
