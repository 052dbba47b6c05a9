// Package format applies safe lint fixes and renders best-effort structural
// reflow suggestions.
package format

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
)

// edit is a flattened text edit with its originating rule, used for
// deterministic conflict resolution.
type edit struct {
	start  int
	end    int
	text   string
	ruleID string
}

// Apply applies all safe fixes from the diagnostics to source in a single
// left-to-right pass and returns the fixed text with the number of edits
// applied.
//
// Conflict policy: edits are ordered by start offset, ties broken by rule ID;
// an edit overlapping an already-applied one is dropped. Safe fixes are pure
// substitutions, so applying the result through the analyzer again yields no
// further safe fixes and Apply is idempotent.
func Apply(source string, diags []lint.Diagnostic) (string, int) {
	var edits []edit
	for _, d := range diags {
		for _, fix := range d.Fixes {
			if !fix.Safe {
				continue
			}
			for _, te := range fix.TextEdits {
				edits = append(edits, edit{
					start:  te.Pos.Offset,
					end:    te.EndPos.Offset,
					text:   te.NewText,
					ruleID: d.RuleID,
				})
			}
		}
	}
	if len(edits) == 0 {
		return source, 0
	}

	sort.Slice(edits, func(i, j int) bool {
		if edits[i].start != edits[j].start {
			return edits[i].start < edits[j].start
		}
		return edits[i].ruleID < edits[j].ruleID
	})

	var sb strings.Builder
	sb.Grow(len(source))
	prev := 0
	applied := 0
	for _, e := range edits {
		if e.start < prev || e.end > len(source) || e.end < e.start {
			continue // overlaps an applied edit or is out of bounds
		}
		sb.WriteString(source[prev:e.start])
		sb.WriteString(e.text)
		prev = e.end
		applied++
	}
	sb.WriteString(source[prev:])
	return sb.String(), applied
}
