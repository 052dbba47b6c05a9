package rules

import (
	"fmt"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(ExplicitAs)
}

// ExplicitAs flags implicit aliases: a table or column reference followed
// directly by an identifier with no aliasing keyword between them.
var ExplicitAs = lint.RuleDef{
	ID:          "AL01",
	Name:        "aliasing.explicit-as",
	Group:       "aliasing",
	Description: "Aliases should be introduced with an explicit AS.",
	Severity:    lint.SeverityWarning,
	Check:       checkExplicitAs,

	Rationale: `An implicit alias is one missing comma away from a column list
bug, and scanning a query for aliases is much faster when every one is
preceded by AS.`,

	BadExample: `SELECT first_name fname
FROM staff s`,

	GoodExample: `SELECT first_name AS fname
FROM staff AS s`,

	Fix: "Insert AS before the alias. Inserting a token is not a safe substitution, so --fix leaves this to the author.",
}

func checkExplicitAs(tokens []token.Token, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	sig := significant(tokens)

	for i := 1; i < len(sig); i++ {
		prev := tokens[sig[i-1]]
		cur := tokens[sig[i]]

		// Reference then bare identifier. The reference is either an
		// identifier (table/column) or a closing paren (function call,
		// derived table).
		if !token.IsIdent(cur.Type) {
			continue
		}
		if !token.IsIdent(prev.Type) && prev.Type != token.RPAREN {
			continue
		}
		// A dot ahead means cur is the qualifier of a longer name, not an
		// alias (schema.table, table.column).
		if i+1 < len(sig) && tokens[sig[i+1]].Type == token.DOT {
			continue
		}

		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "AL01",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("Alias %q should be preceded by AS", identName(cur)),
			Pos:      cur.Pos,
			EndPos:   cur.End,
			Fixes: []lint.Fix{{
				Description: "Insert AS before the alias",
				Safe:        false,
				TextEdits: []lint.TextEdit{{
					Pos:     cur.Pos,
					EndPos:  cur.Pos,
					NewText: "AS ",
				}},
			}},
		})
	}
	return diagnostics
}
