package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlstyle/internal/cli/output"
	"github.com/leapstack-labs/sqlstyle/internal/config"
	"github.com/leapstack-labs/sqlstyle/internal/runner"
	"github.com/leapstack-labs/sqlstyle/pkg/format"
	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	_ "github.com/leapstack-labs/sqlstyle/pkg/lint/rules" // register style rules
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format   string   // Output mode: auto, text, json
	Severity string   // Minimum severity: error, warning, info, hint
	Disable  []string // Rule IDs to disable
	Rules    []string // Run only specific rules
	Fix      bool     // Apply safe fixes in place before reporting
	Diff     bool     // Show a suggested layout diff per file
	Watch    bool     // Re-run on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Check SQL files for style violations",
		Long: `Analyze SQL files and report style violations.

Paths may be files or directories; directories are searched recursively
for .sql files. The pseudo-path "-" reads from standard input.

Exit codes:
  0  no violations above info severity
  1  warnings found
  2  errors found
  3  configuration or internal failure`,
		Example: `  # Check files
  sqlstyle check queries/report.sql

  # Check a directory tree
  sqlstyle check ./models

  # Check standard input
  cat query.sql | sqlstyle check -

  # Apply safe fixes, then report what remains
  sqlstyle check --fix ./models

  # Machine-readable output
  sqlstyle check --format json ./models

  # Only run specific rules
  sqlstyle check --rule KC01,AL01 ./models`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output mode: auto, text, json")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Minimum severity to report: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVar(&opts.Fix, "fix", false, "Apply safe fixes in place")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Show suggested layout as a diff")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch files and re-check on change")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}
	if cfg.Fix {
		opts.Fix = true
	}

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}
	threshold, err := severityThreshold(cfg, opts)
	if err != nil {
		return err
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no SQL files found in %s", strings.Join(args, ", "))
	}

	if opts.Watch {
		return watchLoop(cmd, r, lintCfg, threshold, opts, paths)
	}
	return checkOnce(cmd, r, lintCfg, threshold, opts, paths)
}

func checkOnce(cmd *cobra.Command, r *output.Renderer, lintCfg *lint.Config, threshold lint.Severity, opts *CheckOptions, paths []string) error {
	run := runner.New(lintCfg)
	run.Stdin = cmd.InOrStdin()

	results, err := run.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	if opts.Fix {
		results, err = applyFixes(run, cmd, results)
		if err != nil {
			return err
		}
	}

	for i := range results {
		results[i].Diagnostics = filterBySeverity(results[i].Diagnostics, threshold)
	}

	if r.EffectiveMode() == output.ModeJSON {
		if err := renderResultsJSON(r, results); err != nil {
			return err
		}
	} else {
		renderResultsText(r, results)
		if opts.Diff {
			renderLayoutDiffs(r, results)
		}
	}

	if code := runner.ExitCode(results); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// applyFixes writes safely fixed sources back, then re-analyzes the
// changed files so the report reflects what remains. Stdin input is
// fixed to stdout instead.
func applyFixes(run *runner.Runner, cmd *cobra.Command, results []runner.FileResult) ([]runner.FileResult, error) {
	changed := make([]string, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		fixed, n := format.Apply(res.Source, res.Diagnostics)
		if n == 0 {
			continue
		}
		if res.Path == runner.StdinPath {
			fmt.Fprint(cmd.OutOrStdout(), fixed)
			continue
		}
		if err := os.WriteFile(res.Path, []byte(fixed), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", res.Path, err)
		}
		changed = append(changed, res.Path)
	}
	if len(changed) == 0 {
		return results, nil
	}

	// Re-analyze only the files that were rewritten.
	rerun, err := run.Run(cmd.Context(), changed)
	if err != nil {
		return nil, err
	}
	byPath := make(map[string]runner.FileResult, len(rerun))
	for _, res := range rerun {
		byPath[res.Path] = res
	}
	for i, res := range results {
		if updated, ok := byPath[res.Path]; ok {
			results[i] = updated
		}
	}
	return results, nil
}

// renderLayoutDiffs prints the suggested clause layout as a unified-style
// diff. The reflowed form is never applied automatically.
func renderLayoutDiffs(r *output.Renderer, results []runner.FileResult) {
	styles := r.Styles()
	for _, res := range results {
		if res.Err != nil || len(res.Tokens) == 0 {
			continue
		}
		diff := format.Diff(res.Source, format.Reflow(res.Tokens))
		if diff == "" {
			continue
		}
		r.Println("")
		r.Println(styles.Bold.Render("Suggested layout for " + res.Path + ":"))
		r.Println(diff)
	}
}

func buildLintConfig(cfg *config.Config, opts *CheckOptions) (*lint.Config, error) {
	lintCfg, err := cfg.ToLintConfig()
	if err != nil {
		return nil, err
	}

	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// --rule restricts the run to the named rules only
	if len(opts.Rules) > 0 {
		enabled := make(map[string]bool)
		for _, id := range opts.Rules {
			id = strings.TrimSpace(id)
			if !lint.Known(id) {
				return nil, &lint.ConfigError{Key: id, Message: "unknown rule id"}
			}
			enabled[id] = true
		}
		for _, rule := range lint.All() {
			if !enabled[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg, nil
}

func severityThreshold(cfg *config.Config, opts *CheckOptions) (lint.Severity, error) {
	if opts.Severity != "" {
		sev, ok := lint.ParseSeverity(opts.Severity)
		if !ok {
			return 0, &lint.ConfigError{Key: "severity", Message: fmt.Sprintf("unknown severity %q", opts.Severity)}
		}
		return sev, nil
	}
	return cfg.MinSeverity()
}

// filterBySeverity drops diagnostics less severe than the threshold.
func filterBySeverity(diags []lint.Diagnostic, threshold lint.Severity) []lint.Diagnostic {
	filtered := diags[:0]
	for _, d := range diags {
		if d.Severity <= threshold {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// expandPaths resolves file and directory arguments into the list of
// SQL files to analyze, sorted and deduplicated.
func expandPaths(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	for _, arg := range args {
		if arg == runner.StdinPath {
			add(arg)
			continue
		}
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".sql") {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// watchLoop re-runs the check whenever a watched file changes.
// The watch itself never sets a non-zero exit code.
func watchLoop(cmd *cobra.Command, r *output.Renderer, lintCfg *lint.Config, threshold lint.Severity, opts *CheckOptions, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch parent directories so editors that replace files on save
	// (rename + create) are still picked up.
	dirs := make(map[string]bool)
	watched := make(map[string]bool)
	for _, p := range paths {
		if p == runner.StdinPath {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	runPass := func() {
		if err := checkOnce(cmd, r, lintCfg, threshold, opts, paths); err != nil {
			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				r.Errorf("check failed: %v\n", err)
			}
		}
	}
	runPass()

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			r.Println("")
			runPass()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Errorf("watch error: %v\n", err)
		}
	}
}
