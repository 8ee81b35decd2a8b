/*
File   : golox/lexer/lexer.go

Package lexer implements Lox's scanner: a single left-to-right pass over
source text producing a flat token stream terminated by exactly one EOF
(spec.md §4.1). The three-index/current-line bookkeeping and the
switch-based dispatch on the lead byte are the same technique the
teacher's Lexer.NextToken uses; comment/string/number/identifier scanning
are folded in as private helpers the way lexer_utils.go splits them out.
*/
package lexer

import (
	"strconv"

	"github.com/go-lox/golox/reporter"
	"github.com/go-lox/golox/token"
)

// Lexer scans Lox source into tokens, reporting lexical errors through
// rep rather than stopping at the first one — the scanner always
// finishes the file so later stages see a complete (if error-flagged)
// token stream.
type Lexer struct {
	src     []byte
	rep     reporter.Reporter
	start   int
	current int
	line    int
	tokens  []token.Token
}

// New creates a Lexer over src, reporting diagnostics to rep.
func New(src string, rep reporter.Reporter) *Lexer {
	return &Lexer{src: []byte(src), rep: rep, line: 1}
}

// ScanTokens scans the entire source and returns the resulting token
// stream, always ending with a single EOF token. Lexical errors are
// reported via the Reporter and do not halt scanning.
func (l *Lexer) ScanTokens() []token.Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, token.New(token.EOF, "", nil, l.line))
	return l.tokens
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.src)
}

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.src[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.addToken(token.LeftParen, nil)
	case ')':
		l.addToken(token.RightParen, nil)
	case '{':
		l.addToken(token.LeftBrace, nil)
	case '}':
		l.addToken(token.RightBrace, nil)
	case ',':
		l.addToken(token.Comma, nil)
	case '.':
		l.addToken(token.Dot, nil)
	case '-':
		l.addToken(token.Minus, nil)
	case '+':
		l.addToken(token.Plus, nil)
	case ';':
		l.addToken(token.Semicolon, nil)
	case '*':
		l.addToken(token.Star, nil)
	case '!':
		l.addToken(l.choose('=', token.BangEqual, token.Bang), nil)
	case '=':
		l.addToken(l.choose('=', token.EqualEqual, token.Equal), nil)
	case '<':
		l.addToken(l.choose('=', token.LessEqual, token.Less), nil)
	case '>':
		l.addToken(l.choose('=', token.GreaterEqual, token.Greater), nil)
	case '/':
		switch {
		case l.match('/'):
			l.skipLineComment()
		case l.match('*'):
			l.skipBlockComment()
		default:
			l.addToken(token.Slash, nil)
		}
	case ' ', '\r', '\t':
		// Ignore whitespace.
	case '\n':
		l.line++
	case '"':
		l.scanString()
	default:
		switch {
		case isDigit(c):
			l.scanNumber()
		case isAlpha(c):
			l.scanIdentifier()
		default:
			l.rep.Lexical(l.line, "Unexpected character.")
		}
	}
}

func (l *Lexer) choose(next byte, ifMatch, otherwise token.Kind) token.Kind {
	if l.match(next) {
		return ifMatch
	}
	return otherwise
}

func (l *Lexer) skipLineComment() {
	for l.peek() != '\n' && !l.isAtEnd() {
		l.advance()
	}
}

// skipBlockComment consumes a /* ... */ comment. Nested /* */ pairs are
// disallowed (spec.md §4.1): each nested /* is reported, and its depth is
// tracked so that the comment ends only at the */ matching the outermost
// /*. An unterminated comment is reported once at the line it started on.
func (l *Lexer) skipBlockComment() {
	startLine := l.line
	depth := 0
	for {
		if l.isAtEnd() {
			l.rep.Lexical(startLine, "Unterminated comment.")
			return
		}
		if l.peek() == '\n' {
			l.line++
		}
		if l.peek() == '/' && l.peekNext() == '*' {
			depth++
			l.rep.Lexical(l.line, "Nested comments disallowed.")
			l.advance()
			l.advance()
			continue
		}
		if l.peek() == '*' && l.peekNext() == '/' {
			l.advance()
			l.advance()
			if depth == 0 {
				return
			}
			depth--
			continue
		}
		l.advance()
	}
}

func (l *Lexer) scanString() {
	startLine := l.line
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.isAtEnd() {
		l.rep.Lexical(startLine, "Unterminated string.")
		return
	}
	l.advance() // the closing quote
	literal := string(l.src[l.start+1 : l.current-1])
	l.addToken(token.String, literal)
}

func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := string(l.src[l.start:l.current])
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		l.rep.Lexical(l.line, "Invalid number literal.")
		return
	}
	l.addToken(token.Number, n)
}

func (l *Lexer) scanIdentifier() {
	for isAlphanumeric(l.peek()) {
		l.advance()
	}
	text := string(l.src[l.start:l.current])
	kind, ok := token.Keywords[text]
	if !ok {
		kind = token.Identifier
	}
	l.addToken(kind, nil)
}

func (l *Lexer) addToken(kind token.Kind, literal any) {
	lexeme := string(l.src[l.start:l.current])
	l.tokens = append(l.tokens, token.New(kind, lexeme, literal, l.line))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
