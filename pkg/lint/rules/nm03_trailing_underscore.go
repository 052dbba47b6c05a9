package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(TrailingUnderscore)
}

// TrailingUnderscore flags identifiers ending with an underscore.
var TrailingUnderscore = lint.RuleDef{
	ID:          "NM03",
	Name:        "naming.trailing-underscore",
	Group:       "naming",
	Description: "Identifiers should not end with an underscore.",
	Severity:    lint.SeverityWarning,
	Check:       checkTrailingUnderscore,

	Rationale: `A trailing underscore carries no information and is usually a
leftover from mechanical renaming or a collision workaround. It is easy to
mistype and easy to miss when reading.`,

	BadExample: `SELECT user_id_ FROM sessions`,

	GoodExample: `SELECT user_id FROM sessions`,
}

func checkTrailingUnderscore(tokens []token.Token, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, tok := range tokens {
		if !token.IsIdent(tok.Type) {
			continue
		}
		name := identName(tok)
		if !strings.HasSuffix(name, "_") {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "NM03",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("Identifier %q should not end with an underscore", name),
			Pos:      tok.Pos,
			EndPos:   tok.End,
		})
	}
	return diagnostics
}
