// Package lexer tokenizes SQL input for style analysis.
//
// The token stream is lossless: whitespace runs and comments come back as
// ordinary tokens, and every token carries its raw source text. Concatenating
// the literals of a full token stream reproduces the input byte for byte.
package lexer

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	input string
	pos   int // byte offset of current char
	line  int // line of current char (1-based)
	col   int // column of current char (1-based)
}

// New creates a Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

// Tokenize returns the full ordered token stream for the input, terminated
// by an EOF token. A *LexError is returned for unterminated string literals,
// quoted identifiers, and block comments.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// ch returns the current character, or 0 at end of input.
func (l *Lexer) ch() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// peek returns the next character without advancing.
func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// advance moves past the current character, maintaining line/column.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

// currentPos returns the position of the current character.
func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// Next returns the next token, including whitespace and comment tokens.
func (l *Lexer) Next() (token.Token, error) {
	start := l.currentPos()

	switch c := l.ch(); {
	case c == 0:
		return l.emit(token.EOF, start), nil
	case isSpace(c):
		for isSpace(l.ch()) {
			l.advance()
		}
		return l.emit(token.WHITESPACE, start), nil
	case c == '-' && l.peek() == '-':
		for l.ch() != '\n' && l.ch() != 0 {
			l.advance()
		}
		return l.emit(token.COMMENT, start), nil
	case c == '/' && l.peek() == '*':
		return l.readBlockComment(start)
	case c == '\'':
		return l.readQuoted(start, '\'', token.STRING, "unterminated string literal")
	case c == '"':
		return l.readQuoted(start, '"', token.QIDENT, "unterminated quoted identifier")
	case isLetter(c) || c == '_':
		for isLetter(l.ch()) || isDigit(l.ch()) || l.ch() == '_' || l.ch() == '$' {
			l.advance()
		}
		tok := l.emit(token.IDENT, start)
		tok.Type = token.LookupIdent(strings.ToLower(tok.Literal))
		return tok, nil
	case isDigit(c):
		l.readNumber()
		return l.emit(token.NUMBER, start), nil
	default:
		return l.readOperator(start), nil
	}
}

// emit builds a token whose literal is the raw source between start and the
// current position.
func (l *Lexer) emit(t token.Type, start token.Position) token.Token {
	return token.Token{
		Type:    t,
		Literal: l.input[start.Offset:l.pos],
		Pos:     start,
		End:     l.currentPos(),
	}
}

func (l *Lexer) readBlockComment(start token.Position) (token.Token, error) {
	l.advance() // /
	l.advance() // *
	for {
		if l.ch() == 0 {
			return token.Token{}, &LexError{Pos: start, Message: "unterminated block comment"}
		}
		if l.ch() == '*' && l.peek() == '/' {
			l.advance()
			l.advance()
			return l.emit(token.COMMENT, start), nil
		}
		l.advance()
	}
}

// readQuoted reads a quoted region delimited by quote, honoring doubled-quote
// escapes ('it''s', "col""name"). The literal keeps its delimiters.
func (l *Lexer) readQuoted(start token.Position, quote byte, t token.Type, errMsg string) (token.Token, error) {
	l.advance() // opening quote
	for {
		switch l.ch() {
		case 0:
			return token.Token{}, &LexError{Pos: start, Message: errMsg}
		case quote:
			if l.peek() == quote {
				l.advance()
				l.advance()
				continue
			}
			l.advance() // closing quote
			return l.emit(t, start), nil
		default:
			l.advance()
		}
	}
}

// readNumber consumes an integer, decimal, or scientific literal.
func (l *Lexer) readNumber() {
	for isDigit(l.ch()) {
		l.advance()
	}
	if l.ch() == '.' && isDigit(l.peek()) {
		l.advance()
		for isDigit(l.ch()) {
			l.advance()
		}
	}
	if l.ch() == 'e' || l.ch() == 'E' {
		l.advance()
		if l.ch() == '+' || l.ch() == '-' {
			l.advance()
		}
		for isDigit(l.ch()) {
			l.advance()
		}
	}
}

// readOperator consumes an operator or punctuation token, matching
// multi-character operators before single characters.
func (l *Lexer) readOperator(start token.Position) token.Token {
	two := map[string]token.Type{
		"<=": token.LE,
		">=": token.GE,
		"<>": token.NE,
		"!=": token.NE,
		"||": token.DPIPE,
	}
	if l.pos+1 < len(l.input) {
		if t, ok := two[l.input[l.pos:l.pos+2]]; ok {
			l.advance()
			l.advance()
			tok := l.emit(t, start)
			return tok
		}
	}

	single := map[byte]token.Type{
		'+': token.PLUS,
		'-': token.MINUS,
		'*': token.STAR,
		'/': token.SLASH,
		'%': token.PERCENT,
		'=': token.EQ,
		'<': token.LT,
		'>': token.GT,
		'.': token.DOT,
		',': token.COMMA,
		';': token.SEMICOLON,
		'(': token.LPAREN,
		')': token.RPAREN,
		'[': token.LBRACKET,
		']': token.RBRACKET,
	}
	t, ok := single[l.ch()]
	if !ok {
		t = token.ILLEGAL
	}
	l.advance()
	return l.emit(t, start)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetter(c byte) bool {
	return unicode.IsLetter(rune(c))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
