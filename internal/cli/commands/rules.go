package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlstyle/internal/cli/output"
	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	_ "github.com/leapstack-labs/sqlstyle/pkg/lint/rules" // register style rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output mode
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available style rules",
		Long: `List all style rules with their default severity and configuration keys.

Pass a rule ID to see its full documentation, including the rationale
and examples of violating and conforming SQL.`,
		Example: `  # List all rules
  sqlstyle rules

  # Show details for a specific rule
  sqlstyle rules KC01

  # List whitespace rules only
  sqlstyle rules --group whitespace

  # Output as JSON
  sqlstyle rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output mode: auto, text, json")

	return cmd
}

func ruleRenderer(cmd *cobra.Command, format string) *output.Renderer {
	if format != "" {
		return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
	}
	return NewCommandContext(cmd).Renderer
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := ruleRenderer(cmd, opts.Format)

	rules := lint.All()
	if opts.Group != "" {
		filtered := rules[:0]
		for _, rule := range rules {
			if rule.Group == opts.Group {
				filtered = append(filtered, rule)
			}
		}
		rules = filtered
	}

	if r.EffectiveMode() == output.ModeJSON {
		infos := make([]lint.RuleInfo, len(rules))
		for i, rule := range rules {
			infos[i] = rule.Info()
		}
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"rules": infos, "count": len(infos)})
	}

	styles := r.Styles()
	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Style Rules (%d)", len(rules))))
	r.Println("")

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Options"})
	for _, rule := range rules {
		t.AppendRow(table.Row{
			rule.ID,
			rule.Name,
			rule.Group,
			rule.Severity.String(),
			strings.Join(rule.ConfigKeys, ", "),
		})
	}
	t.Render()

	r.Println("")
	r.Println(styles.Muted.Render("Use 'sqlstyle rules <rule-id>' for detailed documentation"))
	return nil
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r := ruleRenderer(cmd, opts.Format)

	rule, ok := lint.Get(strings.ToUpper(strings.TrimSpace(ruleID)))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	if r.EffectiveMode() == output.ModeJSON {
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(rule.Info())
	}

	styles := r.Styles()
	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")
	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.Severity.String())
	if len(rule.ConfigKeys) > 0 {
		r.Printf("  %s: %s\n", styles.Bold.Render("Options"), strings.Join(rule.ConfigKeys, ", "))
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}
	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad"))
		printIndented(r, rule.BadExample)
		r.Println("")
	}
	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good"))
		printIndented(r, rule.GoodExample)
		r.Println("")
	}
	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How To Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}
	return nil
}

func printIndented(r *output.Renderer, block string) {
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		r.Println("  " + line)
	}
}
