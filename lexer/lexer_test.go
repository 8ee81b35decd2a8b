package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-lox/golox/reporter"
	"github.com/go-lox/golox/token"
)

// kinds extracts the Kind sequence from a token stream, dropping EOF so
// tests can compare against a plain literal slice.
func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		out = append(out, tok.Kind)
	}
	return out
}

type kindCase struct {
	Input    string
	Expected []token.Kind
}

func TestLexer_ScanTokens_Kinds(t *testing.T) {
	tests := []kindCase{
		{
			Input:    `( ) { } , . - + ; * / `,
			Expected: []token.Kind{token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace, token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star, token.Slash},
		},
		{
			Input:    `! != = == < <= > >=`,
			Expected: []token.Kind{token.Bang, token.BangEqual, token.Equal, token.EqualEqual, token.Less, token.LessEqual, token.Greater, token.GreaterEqual},
		},
		{
			Input:    `var x = 12.5;`,
			Expected: []token.Kind{token.Var, token.Identifier, token.Equal, token.Number, token.Semicolon},
		},
		{
			Input:    `and class else false fun for if nil or print return super this true var while`,
			Expected: []token.Kind{token.And, token.Class, token.Else, token.False, token.Fun, token.For, token.If, token.Nil, token.Or, token.Print, token.Return, token.Super, token.This, token.True, token.Var, token.While},
		},
		{
			Input:    `"a string" orchid`,
			Expected: []token.Kind{token.String, token.Identifier},
		},
	}

	for _, tc := range tests {
		rep := reporter.NewConsole(&discard{})
		lx := New(tc.Input, rep)
		toks := lx.ScanTokens()
		assert.Equal(t, tc.Expected, kinds(toks))
		assert.False(t, rep.HadError())
		assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	}
}

func TestLexer_ScanTokens_AlwaysEndsInExactlyOneEOF(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	toks := New("", rep).ScanTokens()
	assert.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)

	rep2 := reporter.NewConsole(&discard{})
	toks2 := New("1 + 1", rep2).ScanTokens()
	eofCount := 0
	for _, tok := range toks2 {
		if tok.Kind == token.EOF {
			eofCount++
		}
	}
	assert.Equal(t, 1, eofCount)
	assert.Equal(t, token.EOF, toks2[len(toks2)-1].Kind)
}

func TestLexer_ScanTokens_NumberLiteral(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	toks := New("123.45", rep).ScanTokens()
	assert.Equal(t, 123.45, toks[0].Literal)
}

func TestLexer_ScanTokens_StringLiteral(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	toks := New(`"hello world"`, rep).ScanTokens()
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestLexer_ScanTokens_MultiLineStringAdvancesLine(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	toks := New("\"line1\nline2\" after", rep).ScanTokens()
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, token.Identifier, toks[1].Kind)
	assert.Equal(t, 2, toks[1].Line)
}

func TestLexer_ScanTokens_UnterminatedStringReportsError(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	New(`"never closed`, rep).ScanTokens()
	assert.True(t, rep.HadError())
}

func TestLexer_ScanTokens_LineComment_Ignored(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	toks := New("// a comment\nvar", rep).ScanTokens()
	assert.Equal(t, []token.Kind{token.Var}, kinds(toks))
}

func TestLexer_ScanTokens_BlockComment_Ignored(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	toks := New("/* multi\nline */ var", rep).ScanTokens()
	assert.Equal(t, []token.Kind{token.Var}, kinds(toks))
	assert.False(t, rep.HadError())
}

func TestLexer_ScanTokens_NestedBlockCommentDisallowed(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	New("/* outer /* inner */ still-in-outer */", rep).ScanTokens()
	assert.True(t, rep.HadError())
}

func TestLexer_ScanTokens_UnterminatedBlockComment(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	New("/* never closed", rep).ScanTokens()
	assert.True(t, rep.HadError())
}

func TestLexer_ScanTokens_UnexpectedCharacter(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	toks := New("@", rep).ScanTokens()
	assert.True(t, rep.HadError())
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestLexer_ScanTokens_KeywordVsIdentifierDisambiguation(t *testing.T) {
	rep := reporter.NewConsole(&discard{})
	toks := New("orchidprint printer print", rep).ScanTokens()
	assert.Equal(t, []token.Kind{token.Identifier, token.Identifier, token.Print}, kinds(toks))
}

// discard is a minimal io.Writer used so lexer tests don't print
// diagnostics to stdout/stderr while still exercising the real reporter.
type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
