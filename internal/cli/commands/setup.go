// Package commands implements the sqlstyle subcommands.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlstyle/internal/cli/output"
	"github.com/leapstack-labs/sqlstyle/internal/config"
)

// ConfigKey is the context key under which the loaded config is stored.
type ConfigKey struct{}

// RendererKey is the context key under which the renderer is stored.
type RendererKey struct{}

// ExitError carries a process exit code out of a command.
// Message, when set, is printed to stderr before exiting.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
}

// NewCommandContext assembles dependencies for a command invocation.
// The renderer is always built against the command's own writers so
// output redirection in tests and scripts works.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig(cmd.Context())
	mode := output.Mode(cfg.Output)
	return &CommandContext{
		Cfg:      cfg,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// getConfig retrieves the config from the command context.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(ConfigKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Output:   config.DefaultOutput,
		Severity: config.DefaultSeverity,
	}
}
