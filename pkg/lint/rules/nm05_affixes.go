package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(ForbiddenAffixes)
}

// ForbiddenAffixes flags identifiers carrying discouraged prefixes or
// suffixes (Hungarian-style type tags).
var ForbiddenAffixes = lint.RuleDef{
	ID:          "NM05",
	Name:        "naming.affixes",
	Group:       "naming",
	Description: "Identifiers should not carry forbidden prefixes or suffixes.",
	Severity:    lint.SeverityInfo,
	ConfigKeys:  []string{"prefixes", "suffixes"},
	Check:       checkForbiddenAffixes,

	Rationale: `Type-encoding prefixes like tbl_ or sp_ duplicate information
the schema already carries and go stale when objects change kind. Names should
describe the data, not the container.`,

	BadExample: `SELECT * FROM tbl_customers`,

	GoodExample: `SELECT * FROM customers`,
}

var defaultForbiddenPrefixes = []string{"tbl_", "sp_", "fn_", "vw_"}

func checkForbiddenAffixes(tokens []token.Token, opts map[string]any) []lint.Diagnostic {
	prefixes := lint.GetStringSliceOption(opts, "prefixes", defaultForbiddenPrefixes)
	suffixes := lint.GetStringSliceOption(opts, "suffixes", nil)

	var diagnostics []lint.Diagnostic
	for _, tok := range tokens {
		if !token.IsIdent(tok.Type) {
			continue
		}
		name := identName(tok)
		lower := strings.ToLower(name)

		for _, p := range prefixes {
			if strings.HasPrefix(lower, strings.ToLower(p)) {
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "NM05",
					Severity: lint.SeverityInfo,
					Message:  fmt.Sprintf("Identifier %q carries forbidden prefix %q", name, p),
					Pos:      tok.Pos,
					EndPos:   tok.End,
				})
				break
			}
		}
		for _, s := range suffixes {
			if strings.HasSuffix(lower, strings.ToLower(s)) {
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "NM05",
					Severity: lint.SeverityInfo,
					Message:  fmt.Sprintf("Identifier %q carries forbidden suffix %q", name, s),
					Pos:      tok.Pos,
					EndPos:   tok.End,
				})
				break
			}
		}
	}
	return diagnostics
}
