package rules

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(KeywordCase)
}

// KeywordCase enforces consistent casing for reserved keywords.
var KeywordCase = lint.RuleDef{
	ID:          "KC01",
	Name:        "casing.keywords",
	Group:       "casing",
	Description: "Reserved keywords should use a consistent case.",
	Severity:    lint.SeverityWarning,
	ConfigKeys:  []string{"case"},
	Check:       checkKeywordCase,

	Rationale: `Mixed keyword casing makes queries harder to scan. Keeping
keywords in one case (conventionally uppercase) visually separates the SQL
skeleton from table and column names.`,

	BadExample: `select id, name
from staff`,

	GoodExample: `SELECT id, name
FROM staff`,

	Fix: "Recase the keyword. This fix is safe and applied automatically by --fix.",
}

var titleCaser = cases.Title(language.English)

func checkKeywordCase(tokens []token.Token, opts map[string]any) []lint.Diagnostic {
	style := lint.GetStringOption(opts, "case", "upper")

	var diagnostics []lint.Diagnostic
	for _, tok := range tokens {
		if !token.IsKeyword(tok.Type) {
			continue
		}
		want := recase(tok.Literal, style)
		if tok.Literal == want {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "KC01",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("Keyword %q should be %q", tok.Literal, want),
			Pos:      tok.Pos,
			EndPos:   tok.End,
			Fixes: []lint.Fix{{
				Description: fmt.Sprintf("Replace with %q", want),
				Safe:        true,
				TextEdits: []lint.TextEdit{{
					Pos:     tok.Pos,
					EndPos:  tok.End,
					NewText: want,
				}},
			}},
		})
	}
	return diagnostics
}

// recase applies the configured keyword case style.
// Unknown styles fall back to uppercase.
func recase(word, style string) string {
	switch style {
	case "lower":
		return strings.ToLower(word)
	case "capitalize":
		return titleCaser.String(strings.ToLower(word))
	default:
		return strings.ToUpper(word)
	}
}
