package rules

import (
	"fmt"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(LeadingDigit)
}

// LeadingDigit flags identifiers that begin with a digit.
var LeadingDigit = lint.RuleDef{
	ID:          "NM02",
	Name:        "naming.leading-digit",
	Group:       "naming",
	Description: "Identifiers must not begin with a digit.",
	Severity:    lint.SeverityError,
	Check:       checkLeadingDigit,

	Rationale: `Identifiers starting with a digit are invalid unquoted in
standard SQL and force quoting everywhere they are referenced. They also read
ambiguously next to numeric literals.`,

	BadExample: `SELECT "1st_choice" FROM options`,

	GoodExample: `SELECT first_choice FROM options`,

	Fix: "Rename the identifier to start with a letter, e.g. first_choice instead of 1st_choice.",
}

func checkLeadingDigit(tokens []token.Token, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	report := func(name string, pos, end token.Position) {
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "NM02",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("Identifier %q must not begin with a digit", name),
			Pos:      pos,
			EndPos:   end,
		})
	}

	for i, tok := range tokens {
		// Quoted identifiers can carry any leading character.
		if tok.Type == token.QIDENT {
			if name := identName(tok); name != "" && name[0] >= '0' && name[0] <= '9' {
				report(name, tok.Pos, tok.End)
			}
			continue
		}
		// An unquoted identifier starting with a digit lexes as a number
		// token glued to an identifier token (no whitespace between them).
		if tok.Type == token.NUMBER && i+1 < len(tokens) {
			next := tokens[i+1]
			if next.Type == token.IDENT && next.Pos.Offset == tok.End.Offset {
				report(tok.Literal+next.Literal, tok.Pos, next.End)
			}
		}
	}
	return diagnostics
}
