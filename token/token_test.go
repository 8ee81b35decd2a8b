package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords_ExactlySixteen(t *testing.T) {
	assert.Len(t, Keywords, 16)
}

func TestKeywords_LookupByExactLexeme(t *testing.T) {
	kind, ok := Keywords["print"]
	assert.True(t, ok)
	assert.Equal(t, Print, kind)

	_, ok = Keywords["printer"]
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "EOF", EOF.String())
	assert.Equal(t, "IDENTIFIER", Identifier.String())
}

func TestNew_BuildsToken(t *testing.T) {
	tok := New(Number, "3.5", 3.5, 2)
	assert.Equal(t, Number, tok.Kind)
	assert.Equal(t, "3.5", tok.Lexeme)
	assert.Equal(t, 3.5, tok.Literal)
	assert.Equal(t, 2, tok.Line)
}
