package format

import (
	"strings"

	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

// Reflow renders a token stream in the canonical layout: top-level clause
// keywords flush left, dependent keywords (AND, OR, ON, SET) on their own
// line right-aligned with their governing keyword, single spaces elsewhere.
//
// The result is best-effort and intended only as a suggestion (see Diff);
// it is never applied to files automatically because line-break placement
// can carry intent the token stream does not.
func Reflow(tokens []token.Token) string {
	p := newPrinter()

	depth := 0
	last := token.EOF
	for _, tok := range tokens {
		if tok.IsTrivia() || tok.Type == token.EOF {
			if tok.Type == token.COMMENT {
				p.comment(tok.Literal)
			}
			continue
		}

		switch {
		case tok.Type == token.LPAREN:
			depth++
			// Glue the paren to a function name, space it after a keyword.
			p.write(tok.Literal, token.IsIdent(last))
			p.suppressSpace()
		case tok.Type == token.RPAREN:
			if depth > 0 {
				depth--
			}
			p.write(tok.Literal, true)
		case depth == 0 && token.IsClauseKeyword(tok.Type) && !p.inClauseHead:
			p.newline()
			p.write(tok.Literal, false)
			p.startClause(tok.Literal)
		case depth == 0 && isDependent(tok.Type):
			p.newline()
			p.pad(len(tok.Literal))
			p.write(tok.Literal, false)
		case tok.Type == token.COMMA || tok.Type == token.SEMICOLON:
			p.write(tok.Literal, true)
		case tok.Type == token.DOT:
			p.write(tok.Literal, true)
			p.suppressSpace()
		default:
			p.write(tok.Literal, false)
			p.endClauseHead(tok.Type)
		}
		last = tok.Type
	}
	return p.String()
}

func isDependent(t token.Type) bool {
	switch t {
	case token.AND, token.OR, token.ON, token.SET:
		return true
	}
	return false
}

// printer accumulates reflowed output, tracking the width of the current
// governing clause keyword for river alignment.
type printer struct {
	out          strings.Builder
	atLineStart  bool
	noSpace      bool
	clauseWidth  int
	inClauseHead bool // between a clause keyword and its first operand
}

func newPrinter() *printer {
	return &printer{atLineStart: true}
}

func (p *printer) String() string {
	return strings.TrimRight(p.out.String(), " \n") + "\n"
}

func (p *printer) write(s string, glue bool) {
	if !p.atLineStart && !glue && !p.noSpace && p.out.Len() > 0 {
		p.out.WriteByte(' ')
	}
	p.out.WriteString(s)
	p.atLineStart = false
	p.noSpace = false
}

func (p *printer) newline() {
	if p.out.Len() == 0 {
		return
	}
	p.out.WriteByte('\n')
	p.atLineStart = true
}

// pad indents so a dependent keyword of the given width right-aligns with
// the governing clause keyword.
func (p *printer) pad(width int) {
	if n := p.clauseWidth - width; n > 0 {
		p.out.WriteString(strings.Repeat(" ", n))
	}
}

func (p *printer) suppressSpace() {
	p.noSpace = true
}

// startClause records the clause keyword and keeps multi-word heads
// (GROUP BY, ORDER BY, INSERT INTO) on one line.
func (p *printer) startClause(literal string) {
	p.clauseWidth = len(literal)
	p.inClauseHead = true
}

// endClauseHead closes the clause head once a non-keyword token follows it.
func (p *printer) endClauseHead(t token.Type) {
	if !token.IsKeyword(t) {
		p.inClauseHead = false
	}
}

func (p *printer) comment(text string) {
	p.write(text, false)
	if strings.HasPrefix(text, "--") {
		p.newline()
	}
}
