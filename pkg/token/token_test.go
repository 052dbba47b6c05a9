package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, token.SELECT, token.LookupIdent("select"))
	assert.Equal(t, token.FROM, token.LookupIdent("from"))
	assert.Equal(t, token.IDENT, token.LookupIdent("customers"))
	// Lookup expects lowercased input; the lexer normalizes before calling.
	assert.Equal(t, token.IDENT, token.LookupIdent("SELECT"))
}

func TestClassification(t *testing.T) {
	assert.True(t, token.IsKeyword(token.WHERE))
	assert.False(t, token.IsKeyword(token.IDENT))
	assert.False(t, token.IsKeyword(token.COMMA))

	assert.True(t, token.IsOperator(token.GE))
	assert.False(t, token.IsOperator(token.SELECT))

	assert.True(t, token.IsIdent(token.IDENT))
	assert.True(t, token.IsIdent(token.QIDENT))
	assert.False(t, token.IsIdent(token.STRING))
}

func TestClauseKeywords(t *testing.T) {
	for _, clause := range []token.Type{
		token.SELECT, token.FROM, token.WHERE, token.GROUP,
		token.HAVING, token.ORDER, token.LIMIT, token.UPDATE,
	} {
		assert.True(t, token.IsClauseKeyword(clause), clause.String())
	}
	for _, dependent := range []token.Type{token.ON, token.AND, token.SET, token.JOIN} {
		assert.False(t, token.IsClauseKeyword(dependent), dependent.String())
	}
}

func TestTriviaAndSpans(t *testing.T) {
	ws := token.Token{
		Type:    token.WHITESPACE,
		Literal: "  ",
		Pos:     token.Position{Line: 1, Column: 7, Offset: 6},
		End:     token.Position{Line: 1, Column: 9, Offset: 8},
	}
	assert.True(t, ws.IsTrivia())
	assert.True(t, ws.Span().Contains(7))
	assert.False(t, ws.Span().Contains(8))

	kw := token.Token{Type: token.SELECT, Literal: "SELECT"}
	assert.False(t, kw.IsTrivia())
}

func TestPositionString(t *testing.T) {
	p := token.Position{Line: 3, Column: 14, Offset: 40}
	assert.Equal(t, "3:14", p.String())
	assert.True(t, p.IsValid())
	assert.False(t, token.Position{}.IsValid())
}
