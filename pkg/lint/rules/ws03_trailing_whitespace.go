package rules

import (
	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	"github.com/leapstack-labs/sqlstyle/pkg/token"
)

func init() {
	lint.Register(TrailingWhitespace)
}

// TrailingWhitespace flags spaces or tabs before a line break or at the end
// of the file.
var TrailingWhitespace = lint.RuleDef{
	ID:          "WS03",
	Name:        "whitespace.trailing",
	Group:       "whitespace",
	Description: "Lines should not end with spaces or tabs.",
	Severity:    lint.SeverityInfo,
	Check:       checkTrailingWhitespace,

	Rationale: `Trailing whitespace is invisible, churns diffs, and trips up
editors configured to strip it. Nothing depends on it.`,

	Fix: "Delete the trailing run. This fix is safe and applied automatically by --fix.",
}

func checkTrailingWhitespace(tokens []token.Token, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	for i, tok := range tokens {
		if tok.Type != token.WHITESPACE {
			continue
		}
		atEOF := i+1 < len(tokens) && tokens[i+1].Type == token.EOF

		// Walk the raw run tracking positions; report each blank run that is
		// terminated by a newline (or by end of input for the final token).
		line, col := tok.Pos.Line, tok.Pos.Column
		runStart := -1
		var runPos token.Position
		for j := 0; j < len(tok.Literal); j++ {
			c := tok.Literal[j]
			if c == ' ' || c == '\t' {
				if runStart < 0 {
					runStart = j
					runPos = token.Position{Line: line, Column: col, Offset: tok.Pos.Offset + j}
				}
			} else if c == '\n' {
				if runStart >= 0 {
					diagnostics = append(diagnostics, trailingRun(runPos, tok.Pos.Offset+j, line))
				}
				runStart = -1
				line++
				col = 0
			} else {
				runStart = -1
			}
			col++
		}
		if runStart >= 0 && atEOF {
			diagnostics = append(diagnostics, trailingRun(runPos, tok.Pos.Offset+len(tok.Literal), line))
		}
	}
	return diagnostics
}

func trailingRun(start token.Position, endOffset, line int) lint.Diagnostic {
	end := token.Position{
		Line:   line,
		Column: start.Column + (endOffset - start.Offset),
		Offset: endOffset,
	}
	return lint.Diagnostic{
		RuleID:   "WS03",
		Severity: lint.SeverityInfo,
		Message:  "Trailing whitespace",
		Pos:      start,
		EndPos:   end,
		Fixes: []lint.Fix{{
			Description: "Remove trailing whitespace",
			Safe:        true,
			TextEdits:   []lint.TextEdit{{Pos: start, EndPos: end, NewText: ""}},
		}},
	}
}
