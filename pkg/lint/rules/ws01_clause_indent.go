package rules

import (
	"fmt"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(ClauseIndent)
}

// ClauseIndent verifies that top-level clause keywords start their line
// without indentation.
var ClauseIndent = lint.RuleDef{
	ID:          "WS01",
	Name:        "whitespace.clause-indent",
	Group:       "whitespace",
	Description: "Top-level clause keywords should start at the left margin.",
	Severity:    lint.SeverityWarning,
	Check:       checkClauseIndent,

	Rationale: `Anchoring SELECT, FROM, WHERE and the other top-level clauses
at column one gives every statement the same silhouette, so the clause
structure can be read from indentation alone. Clauses inside parenthesized
subqueries are exempt.`,

	BadExample: `SELECT id
  FROM staff
    WHERE id > 10`,

	GoodExample: `SELECT id
FROM staff
WHERE id > 10`,

	Fix: "Remove the leading whitespace before the clause keyword. Re-indentation is structural, so --fix does not apply it automatically.",
}

func checkClauseIndent(tokens []token.Token, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	sig := significant(tokens)

	depth := 0
	for i, ti := range sig {
		tok := tokens[ti]
		switch tok.Type {
		case token.LPAREN:
			depth++
			continue
		case token.RPAREN:
			if depth > 0 {
				depth--
			}
			continue
		}

		if depth != 0 || !token.IsClauseKeyword(tok.Type) {
			continue
		}
		if !lineStart(tokens, sig, i) || tok.Pos.Column == 1 {
			continue
		}

		lineOrigin := token.Position{
			Line:   tok.Pos.Line,
			Column: 1,
			Offset: tok.Pos.Offset - (tok.Pos.Column - 1),
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "WS01",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("Clause keyword %q should not be indented", tok.Literal),
			Pos:      tok.Pos,
			EndPos:   tok.End,
			Fixes: []lint.Fix{{
				Description: "Remove leading indentation",
				Safe:        false,
				TextEdits: []lint.TextEdit{{
					Pos:     lineOrigin,
					EndPos:  tok.Pos,
					NewText: "",
				}},
			}},
		})
	}
	return diagnostics
}
