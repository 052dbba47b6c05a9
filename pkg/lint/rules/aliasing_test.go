package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAL01_ExplicitAs(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		wantCount int
	}{
		{
			name:      "explicit aliases",
			sql:       "SELECT first_name AS fname FROM staff AS s",
			wantCount: 0,
		},
		{
			name:      "implicit column alias",
			sql:       "SELECT first_name fname FROM staff",
			wantCount: 1,
		},
		{
			name:      "implicit table alias",
			sql:       "SELECT s.first_name FROM staff s",
			wantCount: 1,
		},
		{
			name:      "implicit alias after function call",
			sql:       "SELECT count(id) total FROM staff",
			wantCount: 1,
		},
		{
			name:      "qualified name is not an alias",
			sql:       "SELECT warehouse.staff.id FROM warehouse.staff",
			wantCount: 0,
		},
		{
			name:      "quoted implicit alias",
			sql:       `SELECT first_name "First Name" FROM staff`,
			wantCount: 1,
		},
		{
			name:      "no aliases at all",
			sql:       "SELECT first_name, last_name FROM staff",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.sql, "AL01")
			assert.Len(t, diags, tt.wantCount)
		})
	}
}

func TestAL01_SuggestsUnsafeInsert(t *testing.T) {
	diags := runRule(t, "SELECT first_name fname FROM staff", "AL01")
	require.Len(t, diags, 1)

	require.Len(t, diags[0].Fixes, 1)
	fix := diags[0].Fixes[0]
	assert.False(t, fix.Safe, "inserting a token is never a safe fix")
	require.Len(t, fix.TextEdits, 1)
	assert.Equal(t, "AS ", fix.TextEdits[0].NewText)
	assert.Equal(t, fix.TextEdits[0].Pos, fix.TextEdits[0].EndPos, "pure insertion")
}
