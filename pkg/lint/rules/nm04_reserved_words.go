package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(ReservedWords)
}

// ReservedWords flags identifiers that collide with a configured
// reserved-word set.
var ReservedWords = lint.RuleDef{
	ID:          "NM04",
	Name:        "naming.reserved-words",
	Group:       "naming",
	Description: "Identifiers should not shadow reserved words.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"reserved"},
	Check:       checkReservedWords,

	Rationale: `Naming a column or table after a reserved word forces quoting
and confuses both readers and tooling. The reserved set is configurable since
it varies by target database.`,

	BadExample: `SELECT "order", "user" FROM events`,

	GoodExample: `SELECT order_id, user_id FROM events`,

	Fix: "Rename the identifier, typically by adding a qualifying suffix such as _id or _name.",
}

func checkReservedWords(tokens []token.Token, opts map[string]any) []lint.Diagnostic {
	words := lint.GetStringSliceOption(opts, "reserved", nil)
	if len(words) == 0 {
		return nil
	}
	reserved := make(map[string]bool, len(words))
	for _, w := range words {
		reserved[strings.ToLower(w)] = true
	}

	var diagnostics []lint.Diagnostic
	for _, tok := range tokens {
		if !token.IsIdent(tok.Type) {
			continue
		}
		name := identName(tok)
		if !reserved[strings.ToLower(name)] {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "NM04",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("Identifier %q is a reserved word", name),
			Pos:      tok.Pos,
			EndPos:   tok.End,
		})
	}
	return diagnostics
}
