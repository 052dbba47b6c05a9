package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
)

func TestNoqa_BareDirectiveSuppressesLine(t *testing.T) {
	sql := "select id -- noqa\nfrom staff"
	diags := analyze(t, sql, nil)

	for _, d := range diags {
		assert.NotEqual(t, 1, d.Pos.Line, "line 1 is fully suppressed")
	}
	// The second line still reports its lowercase keyword.
	require.Len(t, diags, 1)
	assert.Equal(t, "KC01", diags[0].RuleID)
	assert.Equal(t, 2, diags[0].Pos.Line)
}

func TestNoqa_ScopedDirective(t *testing.T) {
	// KC01 suppressed, AL01 still reported on the same line.
	sql := "select first_name fname -- noqa: KC01\nFROM staff"
	diags := analyze(t, sql, nil)

	require.Len(t, diags, 1)
	assert.Equal(t, "AL01", diags[0].RuleID)
}

func TestNoqa_MultipleRuleIDs(t *testing.T) {
	sql := "select first_name fname -- noqa: KC01, AL01\nFROM staff"
	diags := analyze(t, sql, nil)
	assert.Empty(t, diags)
}

func TestNoqa_CaseInsensitiveRuleIDs(t *testing.T) {
	sql := "select id -- noqa: kc01\nFROM staff"
	diags := analyze(t, sql, nil)
	assert.Empty(t, diags)
}

func TestNoqa_OrdinaryCommentsDoNotSuppress(t *testing.T) {
	sql := "select id -- classic comment\nFROM staff"
	diags := analyze(t, sql, nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "KC01", diags[0].RuleID)
}

func TestNoqa_BlockCommentDirective(t *testing.T) {
	sql := "select id /* noqa */\nFROM staff"
	diags := analyze(t, sql, nil)
	assert.Empty(t, diags)
}

func TestConfig_ValidateRejectsUnknownRule(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.Disable("ZZ99")

	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *lint.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "ZZ99", cfgErr.Key)
}

func TestConfig_ValidateAcceptsKnownRules(t *testing.T) {
	cfg := lint.NewConfig()
	cfg.Disable("KC01")
	cfg.SetSeverity("WS01", lint.SeverityHint)
	cfg.SetRuleOptions("NM01", map[string]any{"max_length": 10})

	assert.NoError(t, cfg.Validate())
}

func TestRegistry_ResolutionOrderIsStable(t *testing.T) {
	first := lint.Resolve(lint.NewConfig())
	second := lint.Resolve(lint.NewConfig())
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	rule, ok := lint.Get("KC01")
	require.True(t, ok)
	assert.Equal(t, "casing", rule.Group)
	assert.NotEmpty(t, rule.Rationale)

	_, ok = lint.Get("ZZ99")
	assert.False(t, ok)

	assert.NotEmpty(t, lint.ByGroup("naming"))
	assert.GreaterOrEqual(t, lint.Count(), 10)
}
