package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/sqlstyle/internal/cli/output"
	"github.com/leapstack-labs/sqlstyle/internal/runner"
	"github.com/leapstack-labs/sqlstyle/pkg/lexer"
	"github.com/leapstack-labs/sqlstyle/pkg/lint"
)

// FileError describes a per-file failure in JSON output.
type FileError struct {
	Type    string `json:"type"` // lex_error, io_error
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// DiagnosticJSON is the JSON shape of a single diagnostic.
type DiagnosticJSON struct {
	RuleID   string        `json:"rule_id"`
	Severity lint.Severity `json:"severity"`
	Message  string        `json:"message"`
	Line     int           `json:"line"`
	Column   int           `json:"column"`
	EndLine  int           `json:"end_line"`
	EndCol   int           `json:"end_column"`
	Fixable  bool          `json:"fixable"`
}

// FileResultJSON is the JSON shape of one analyzed file.
type FileResultJSON struct {
	Path        string           `json:"path"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Error       *FileError       `json:"error,omitempty"`
}

// CheckJSONOutput is the top-level JSON report.
type CheckJSONOutput struct {
	Files   []FileResultJSON `json:"files"`
	Summary struct {
		Files    int `json:"files"`
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
		Infos    int `json:"infos"`
		Hints    int `json:"hints"`
		Failed   int `json:"failed"`
	} `json:"summary"`
}

func fileError(err error) *FileError {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return &FileError{
			Type:    "lex_error",
			Message: lexErr.Message,
			Line:    lexErr.Pos.Line,
			Column:  lexErr.Pos.Column,
		}
	}
	return &FileError{Type: "io_error", Message: err.Error()}
}

func hasSafeFix(d lint.Diagnostic) bool {
	for _, fix := range d.Fixes {
		if fix.Safe {
			return true
		}
	}
	return false
}

// renderResultsJSON writes the full report as indented JSON.
func renderResultsJSON(r *output.Renderer, results []runner.FileResult) error {
	out := CheckJSONOutput{Files: make([]FileResultJSON, 0, len(results))}
	out.Summary.Files = len(results)

	for _, res := range results {
		fr := FileResultJSON{Path: res.Path, Diagnostics: []DiagnosticJSON{}}
		if res.Err != nil {
			fr.Error = fileError(res.Err)
			out.Summary.Failed++
		}
		for _, d := range res.Diagnostics {
			fr.Diagnostics = append(fr.Diagnostics, DiagnosticJSON{
				RuleID:   d.RuleID,
				Severity: d.Severity,
				Message:  d.Message,
				Line:     d.Pos.Line,
				Column:   d.Pos.Column,
				EndLine:  d.EndPos.Line,
				EndCol:   d.EndPos.Column,
				Fixable:  hasSafeFix(d),
			})
			countSeverity(&out, d.Severity)
		}
		out.Files = append(out.Files, fr)
	}

	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func countSeverity(out *CheckJSONOutput, sev lint.Severity) {
	switch sev {
	case lint.SeverityError:
		out.Summary.Errors++
	case lint.SeverityWarning:
		out.Summary.Warnings++
	case lint.SeverityInfo:
		out.Summary.Infos++
	case lint.SeverityHint:
		out.Summary.Hints++
	}
}

// renderResultsText writes a human-readable report.
func renderResultsText(r *output.Renderer, results []runner.FileResult) {
	styles := r.Styles()
	total := 0
	failed := 0

	for _, res := range results {
		if res.Err != nil {
			failed++
			r.Printf("%s: %s\n", styles.Path.Render(res.Path), styles.Error.Render(res.Err.Error()))
			continue
		}
		for _, d := range res.Diagnostics {
			total++
			sevStyle := severityStyle(styles, d.Severity)
			r.Printf("%s:%d:%d: %s %s %s\n",
				styles.Path.Render(res.Path),
				d.Pos.Line, d.Pos.Column,
				sevStyle.Render(d.Severity.String()),
				styles.Muted.Render("["+d.RuleID+"]"),
				d.Message,
			)
		}
	}

	switch {
	case failed > 0:
		r.Println(styles.Error.Render(fmt.Sprintf("%d file(s) could not be analyzed", failed)))
	case total == 0:
		r.Println(styles.Success.Render(fmt.Sprintf("All clean (%d file(s) checked)", len(results))))
	default:
		r.Println(styles.Bold.Render(fmt.Sprintf("%d issue(s) in %d file(s)", total, len(results))))
	}
}

func severityStyle(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	case lint.SeverityInfo:
		return styles.Info
	default:
		return styles.Hint
	}
}
