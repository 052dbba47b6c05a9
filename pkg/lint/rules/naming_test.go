package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNM01_LengthBoundary(t *testing.T) {
	at30 := strings.Repeat("a", 30)
	at31 := strings.Repeat("a", 31)

	diags := runRule(t, "SELECT "+at30+" FROM t", "NM01")
	assert.Empty(t, diags, "30-byte identifier is within the limit")

	diags = runRule(t, "SELECT "+at31+" FROM t", "NM01")
	require.Len(t, diags, 1, "31-byte identifier exceeds the limit")
	assert.Equal(t, "NM01", diags[0].RuleID)
}

func TestNM01_ConfiguredLimit(t *testing.T) {
	diags := runRuleOpts(t, "SELECT abcdef FROM t", "NM01", map[string]any{"max_length": 5})
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, `"abcdef"`)
}

func TestNM01_QuotedIdentifierMeasuredWithoutQuotes(t *testing.T) {
	// 30 bytes of name inside quotes: the delimiters do not count.
	name := `"` + strings.Repeat("b", 30) + `"`
	diags := runRule(t, "SELECT "+name+" FROM t", "NM01")
	assert.Empty(t, diags)
}

func TestNM02_LeadingDigit(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		wantDiag bool
	}{
		{
			name:     "quoted identifier with leading digit",
			sql:      `SELECT "1st_choice" FROM options`,
			wantDiag: true,
		},
		{
			name:     "unquoted identifier with leading digit",
			sql:      "SELECT 1st_choice FROM options",
			wantDiag: true,
		},
		{
			name:     "plain numeric literal",
			sql:      "SELECT 1 FROM options",
			wantDiag: false,
		},
		{
			name:     "number and identifier separated by space",
			sql:      "SELECT 1 st FROM options",
			wantDiag: false,
		},
		{
			name:     "clean identifier",
			sql:      "SELECT first_choice FROM options",
			wantDiag: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.sql, "NM02")
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected NM02 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected NM02 diagnostic")
			}
		})
	}
}

func TestNM03_TrailingUnderscore(t *testing.T) {
	diags := runRule(t, "SELECT user_id_ FROM sessions", "NM03")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "user_id_")

	diags = runRule(t, "SELECT user_id FROM sessions", "NM03")
	assert.Empty(t, diags)
}

func TestNM04_ReservedWords(t *testing.T) {
	opts := map[string]any{"reserved": []string{"order", "user"}}

	diags := runRuleOpts(t, `SELECT "user" FROM events`, "NM04", opts)
	require.Len(t, diags, 1)

	// Case-insensitive match.
	diags = runRuleOpts(t, `SELECT "User" FROM events`, "NM04", opts)
	require.Len(t, diags, 1)

	// No reserved set configured: rule is inert.
	diags = runRule(t, `SELECT "user" FROM events`, "NM04")
	assert.Empty(t, diags)
}

func TestNM05_ForbiddenAffixes(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		opts     map[string]any
		wantDiag bool
	}{
		{
			name:     "default tbl_ prefix",
			sql:      "SELECT * FROM tbl_customers",
			wantDiag: true,
		},
		{
			name:     "default sp_ prefix",
			sql:      "SELECT * FROM sp_cleanup",
			wantDiag: true,
		},
		{
			name:     "clean name",
			sql:      "SELECT * FROM customers",
			wantDiag: false,
		},
		{
			name:     "configured suffix",
			sql:      "SELECT * FROM customers_tbl",
			opts:     map[string]any{"suffixes": []string{"_tbl"}},
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRuleOpts(t, tt.sql, "NM05", tt.opts)
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected NM05 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected NM05 diagnostic")
			}
		})
	}
}
