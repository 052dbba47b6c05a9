package rules

import (
	"fmt"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(KeywordAlignment)
}

// KeywordAlignment verifies that dependent keywords starting a line
// right-align with their governing keyword, the "river" layout:
//
//	SELECT id
//	  FROM staff
//	 WHERE tenure > 5
//	   AND city = 'Ghent'
var KeywordAlignment = lint.RuleDef{
	ID:          "WS02",
	Name:        "whitespace.alignment",
	Group:       "whitespace",
	Description: "Dependent keywords should right-align with their governing keyword.",
	Severity:    lint.SeverityInfo,
	ConfigKeys:  []string{"tolerance"},
	Check:       checkKeywordAlignment,

	Rationale: `Right-aligning ON under its JOIN and AND under its WHERE keeps
a single whitespace river through the statement, which makes the condition
structure visible without reading the text.`,

	BadExample: `SELECT id
FROM staff
WHERE tenure > 5
AND city = 'Ghent'`,

	GoodExample: `SELECT id
  FROM staff
 WHERE tenure > 5
   AND city = 'Ghent'`,

	Fix: "Shift the keyword so its last character lines up with the governing keyword's last character.",
}

const defaultAlignTolerance = 1

// governing keyword classes, tracked per paren depth
type governors struct {
	clause   *token.Token // last top-level clause keyword (UPDATE, WHERE, ...)
	join     *token.Token // last JOIN
	condHead *token.Token // last WHERE, HAVING, ON, or WHEN
}

func checkKeywordAlignment(tokens []token.Token, opts map[string]any) []lint.Diagnostic {
	tolerance := lint.GetIntOption(opts, "tolerance", defaultAlignTolerance)

	var diagnostics []lint.Diagnostic
	sig := significant(tokens)

	govByDepth := map[int]*governors{0: {}}
	depth := 0

	for i, ti := range sig {
		tok := tokens[ti]
		switch tok.Type {
		case token.LPAREN:
			depth++
			govByDepth[depth] = &governors{}
			continue
		case token.RPAREN:
			if depth > 0 {
				delete(govByDepth, depth)
				depth--
			}
			continue
		}

		gov := govByDepth[depth]
		if gov == nil {
			gov = &governors{}
			govByDepth[depth] = gov
		}

		var governor *token.Token
		switch tok.Type {
		case token.ON:
			governor = gov.join
		case token.AND, token.OR:
			governor = gov.condHead
		case token.SET:
			governor = gov.clause
		}

		if governor != nil && lineStart(tokens, sig, i) {
			diff := rightEdge(tok) - rightEdge(*governor)
			if diff < -tolerance || diff > tolerance {
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "WS02",
					Severity: lint.SeverityInfo,
					Message: fmt.Sprintf("Keyword %q should right-align with %q on line %d",
						tok.Literal, governor.Literal, governor.Pos.Line),
					Pos:    tok.Pos,
					EndPos: tok.End,
				})
			}
		}

		// Update governors after the check so a keyword never governs itself.
		t := tokens[ti]
		switch tok.Type {
		case token.JOIN:
			gov.join = &t
		case token.WHERE, token.HAVING, token.ON, token.WHEN:
			gov.condHead = &t
		}
		if token.IsClauseKeyword(tok.Type) {
			gov.clause = &t
		}
	}
	return diagnostics
}
