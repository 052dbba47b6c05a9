package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlstyle/internal/config"
	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	_ "github.com/leapstack-labs/sqlstyle/pkg/lint/rules" // register style rules
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a default sqlstyle.yaml",
		Long: `Write a sqlstyle.yaml configuration file with every rule listed at its
default severity, ready to edit.`,
		Example: `  # Create sqlstyle.yaml in the current directory
  sqlstyle init

  # Create it in a project directory
  sqlstyle init ./my-project

  # Overwrite an existing config
  sqlstyle init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	r := NewCommandContext(cmd).Renderer
	styles := r.Styles()

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, "sqlstyle.yaml")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := defaultConfigYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	r.Println(styles.Success.Render("Created " + path))
	return nil
}

// defaultConfigYAML renders a config with every registered rule present,
// so the generated file doubles as rule documentation.
func defaultConfigYAML() ([]byte, error) {
	cfg := struct {
		Output   string                       `yaml:"output"`
		Severity string                       `yaml:"severity"`
		Rules    map[string]map[string]string `yaml:"rules"`
	}{
		Output:   config.DefaultOutput,
		Severity: config.DefaultSeverity,
		Rules:    make(map[string]map[string]string),
	}
	for _, rule := range lint.All() {
		cfg.Rules[rule.ID] = map[string]string{
			"severity": rule.Severity.String(),
		}
	}

	header := []byte("# sqlstyle configuration\n# Rules: run 'sqlstyle rules' for documentation\n")
	body, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, err
	}
	return append(header, body...), nil
}
