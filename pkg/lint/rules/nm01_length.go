package rules

import (
	"fmt"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(IdentifierLength)
}

// IdentifierLength flags identifiers exceeding the configured byte length.
var IdentifierLength = lint.RuleDef{
	ID:          "NM01",
	Name:        "naming.length",
	Group:       "naming",
	Description: "Identifiers should not exceed the maximum byte length.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"max_length"},
	Check:       checkIdentifierLength,

	Rationale: `Most databases cap identifier length (Oracle historically at 30
bytes), and very long names hurt readability everywhere. Staying under a
portable limit keeps schemas movable between engines.`,

	BadExample: `SELECT customer_lifetime_value_rolling_average_window FROM metrics`,

	GoodExample: `SELECT customer_ltv_rolling_avg FROM metrics`,

	Fix: "Shorten the identifier, using well-known abbreviations where possible.",
}

const defaultMaxLength = 30

func checkIdentifierLength(tokens []token.Token, opts map[string]any) []lint.Diagnostic {
	maxLen := lint.GetIntOption(opts, "max_length", defaultMaxLength)

	var diagnostics []lint.Diagnostic
	for _, tok := range tokens {
		if !token.IsIdent(tok.Type) {
			continue
		}
		name := identName(tok)
		if len(name) <= maxLen {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "NM01",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("Identifier %q is %d bytes long; maximum is %d", name, len(name), maxLen),
			Pos:      tok.Pos,
			EndPos:   tok.End,
		})
	}
	return diagnostics
}
