package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWS01_ClauseIndent(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		wantCount int
	}{
		{
			name:      "flush clauses",
			sql:       "SELECT id\nFROM staff\nWHERE id > 1",
			wantCount: 0,
		},
		{
			name:      "indented FROM and WHERE",
			sql:       "SELECT id\n  FROM staff\n    WHERE id > 1",
			wantCount: 2,
		},
		{
			name:      "clause mid-line is not checked",
			sql:       "SELECT id FROM staff WHERE id > 1",
			wantCount: 0,
		},
		{
			name:      "subquery clauses are exempt",
			sql:       "SELECT id\nFROM (\n    SELECT id\n    FROM staff\n) AS s",
			wantCount: 0,
		},
		{
			name:      "tab indentation",
			sql:       "SELECT id\n\tFROM staff",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.sql, "WS01")
			assert.Len(t, diags, tt.wantCount)
		})
	}
}

func TestWS01_FixRemovesIndentation(t *testing.T) {
	diags := runRule(t, "SELECT id\n  FROM staff", "WS01")
	require.Len(t, diags, 1)

	require.Len(t, diags[0].Fixes, 1)
	fix := diags[0].Fixes[0]
	assert.False(t, fix.Safe, "re-indentation must not be applied automatically")

	require.Len(t, fix.TextEdits, 1)
	edit := fix.TextEdits[0]
	assert.Equal(t, 2, edit.Pos.Line)
	assert.Equal(t, 1, edit.Pos.Column)
	assert.Equal(t, 3, edit.EndPos.Column)
	assert.Equal(t, "", edit.NewText)
}

func TestWS02_Alignment(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		wantCount int
	}{
		{
			name:      "AND aligned with WHERE",
			sql:       "SELECT id\nFROM staff\nWHERE tenure > 5\n  AND city = 'Ghent'",
			wantCount: 0,
		},
		{
			name:      "AND flush left",
			sql:       "SELECT id\nFROM staff\nWHERE tenure > 5\nAND city = 'Ghent'",
			wantCount: 1,
		},
		{
			name:      "ON aligned with JOIN",
			sql:       "SELECT r.id\nFROM riders AS r\nJOIN bikes AS b\n  ON r.bike_vin = b.vin",
			wantCount: 0,
		},
		{
			name:      "ON misaligned",
			sql:       "SELECT r.id\nFROM riders AS r\nJOIN bikes AS b\nON r.bike_vin = b.vin",
			wantCount: 1,
		},
		{
			name:      "SET aligned with UPDATE",
			sql:       "UPDATE staff\n   SET city = 'Ghent'",
			wantCount: 0,
		},
		{
			name:      "SET flush left",
			sql:       "UPDATE staff\nSET city = 'Ghent'",
			wantCount: 1,
		},
		{
			name:      "same-line AND is not checked",
			sql:       "SELECT id FROM staff WHERE a = 1 AND b = 2",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.sql, "WS02")
			assert.Len(t, diags, tt.wantCount)
		})
	}
}

func TestWS02_Tolerance(t *testing.T) {
	// One column off: within the default tolerance.
	sql := "SELECT id\nFROM staff\nWHERE tenure > 5\n AND city = 'Ghent'"
	assert.Empty(t, runRule(t, sql, "WS02"))

	// Zero tolerance flags it.
	diags := runRuleOpts(t, sql, "WS02", map[string]any{"tolerance": 0})
	assert.Len(t, diags, 1)
}

func TestWS03_TrailingWhitespace(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		wantCount int
	}{
		{
			name:      "clean lines",
			sql:       "SELECT id\nFROM staff\n",
			wantCount: 0,
		},
		{
			name:      "spaces before newline",
			sql:       "SELECT id   \nFROM staff\n",
			wantCount: 1,
		},
		{
			name:      "tab before newline",
			sql:       "SELECT id\t\nFROM staff\n",
			wantCount: 1,
		},
		{
			name:      "two dirty lines",
			sql:       "SELECT id \nFROM staff \n",
			wantCount: 2,
		},
		{
			name:      "trailing blanks at end of file",
			sql:       "SELECT id\nFROM staff   ",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.sql, "WS03")
			assert.Len(t, diags, tt.wantCount)
		})
	}
}

func TestWS03_FixSpansTheRun(t *testing.T) {
	diags := runRule(t, "SELECT id  \nFROM staff\n", "WS03")
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, 1, d.Pos.Line)
	assert.Equal(t, 10, d.Pos.Column)
	assert.Equal(t, 12, d.EndPos.Column)

	require.Len(t, d.Fixes, 1)
	assert.True(t, d.Fixes[0].Safe)
}
