package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlstyle/pkg/lexer"
	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	_ "github.com/leapstack-labs/sqlstyle/pkg/lint/rules" // register rules
)

// runRule lints sql with only the given rule enabled.
func runRule(t *testing.T, sql, ruleID string) []lint.Diagnostic {
	t.Helper()
	return runRuleOpts(t, sql, ruleID, nil)
}

// runRuleOpts lints sql with only the given rule enabled, passing opts as the
// rule's configuration parameters.
func runRuleOpts(t *testing.T, sql, ruleID string, opts map[string]any) []lint.Diagnostic {
	t.Helper()

	tokens, err := lexer.Tokenize(sql)
	require.NoError(t, err)

	cfg := lint.NewConfig()
	for _, rule := range lint.All() {
		if rule.ID != ruleID {
			cfg.Disable(rule.ID)
		}
	}
	if opts != nil {
		cfg.SetRuleOptions(ruleID, opts)
	}

	return lint.NewAnalyzer(cfg).Analyze(tokens)
}
