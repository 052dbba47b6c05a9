package rules

import (
	"strings"

	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

// identName returns the bare name of an identifier token, delimiters and
// doubled-quote escapes removed for quoted identifiers.
func identName(tok token.Token) string {
	if tok.Type != token.QIDENT {
		return tok.Literal
	}
	name := strings.TrimPrefix(tok.Literal, `"`)
	name = strings.TrimSuffix(name, `"`)
	return strings.ReplaceAll(name, `""`, `"`)
}

// rightEdge returns the column of the last character of a single-line token.
func rightEdge(tok token.Token) int {
	return tok.Pos.Column + len(tok.Literal) - 1
}

// significant returns the indices of non-trivia tokens, excluding EOF.
func significant(tokens []token.Token) []int {
	var idx []int
	for i, tok := range tokens {
		if tok.IsTrivia() || tok.Type == token.EOF {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// lineStart reports whether the token at sig[i] is the first significant
// token on its line.
func lineStart(tokens []token.Token, sig []int, i int) bool {
	if i == 0 {
		return true
	}
	return tokens[sig[i]].Pos.Line > tokens[sig[i-1]].Pos.Line
}
