package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlstyle/internal/runner"
	"github.com/leapstack-labs/sqlstyle/pkg/format"
	_ "github.com/leapstack-labs/sqlstyle/pkg/lint/rules" // register style rules
)

// FixOptions holds options for the fix command.
type FixOptions struct {
	Disable []string // Rule IDs to disable
	DryRun  bool     // Report what would change without writing
}

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:   "fix <path>...",
		Short: "Apply safe fixes to SQL files",
		Long: `Rewrite SQL files applying every fix that is mechanically safe:
keyword recasing and trailing whitespace removal. Fixes that could
change meaning (alias keywords, indentation) are never applied;
use 'check --diff' to review those as a suggested diff.

Applying fixes is idempotent: running fix twice produces the same output
as running it once. The pseudo-path "-" reads standard input and writes
the fixed source to standard output.`,
		Example: `  # Fix files in place
  sqlstyle fix queries/report.sql

  # Fix a directory tree
  sqlstyle fix ./models

  # Preview without writing
  sqlstyle fix --dry-run ./models

  # Filter stdin to stdout
  cat query.sql | sqlstyle fix -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, opts, args)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would change without writing")

	return cmd
}

func runFix(cmd *cobra.Command, opts *FixOptions, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	styles := r.Styles()

	lintCfg, err := buildLintConfig(cmdCtx.Cfg, &CheckOptions{Disable: opts.Disable})
	if err != nil {
		return err
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no SQL files found")
	}

	run := runner.New(lintCfg)
	run.Stdin = cmd.InOrStdin()

	results, err := run.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}

	fixedFiles := 0
	fixCount := 0
	failed := 0

	for _, res := range results {
		if res.Err != nil {
			failed++
			r.Errorf("%s: %v\n", res.Path, res.Err)
			continue
		}
		fixed, n := format.Apply(res.Source, res.Diagnostics)

		if res.Path == runner.StdinPath {
			fmt.Fprint(cmd.OutOrStdout(), fixed)
			fixCount += n
			if n > 0 {
				fixedFiles++
			}
			continue
		}
		if n == 0 {
			continue
		}
		if !opts.DryRun {
			if err := os.WriteFile(res.Path, []byte(fixed), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", res.Path, err)
			}
		}
		fixedFiles++
		fixCount += n
		r.Printf("%s: %d fix(es)\n", styles.Path.Render(res.Path), n)
	}

	if !hasStdin(paths) {
		verb := "applied"
		if opts.DryRun {
			verb = "available"
		}
		r.Println(styles.Bold.Render(fmt.Sprintf("%d fix(es) %s in %d file(s)", fixCount, verb, fixedFiles)))
	}

	if failed > 0 {
		return &ExitError{Code: 3, Message: fmt.Sprintf("%d file(s) could not be fixed", failed)}
	}
	return nil
}

func hasStdin(paths []string) bool {
	for _, p := range paths {
		if p == runner.StdinPath {
			return true
		}
	}
	return false
}
