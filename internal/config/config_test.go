package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlstyle/pkg/lint"
	_ "github.com/leapstack-labs/sqlstyle/pkg/lint/rules"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlstyle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Output)
	assert.Equal(t, "hint", cfg.Severity)
	assert.False(t, cfg.Fix)
	assert.Empty(t, cfg.Disabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
severity: warning
disabled:
  - WS02
rules:
  KC01:
    severity: error
    parameters:
      case: lower
  NM01:
    enabled: false
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "warning", cfg.Severity)
	assert.Equal(t, []string{"WS02"}, cfg.Disabled)

	lc, err := cfg.ToLintConfig()
	require.NoError(t, err)
	assert.True(t, lc.IsDisabled("WS02"))
	assert.True(t, lc.IsDisabled("NM01"))
	assert.False(t, lc.IsDisabled("KC01"))
	assert.Equal(t, lint.SeverityError, lc.GetSeverity("KC01", lint.SeverityWarning))
	assert.Equal(t, "lower", lc.GetRuleOptions("KC01")["case"])
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "rules: [not: a: map\n")
	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "severity: warning\n")
	t.Setenv("SQLSTYLE_SEVERITY", "error")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Severity)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SQLSTYLE_SEVERITY", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("severity", "hint", "")
	flags.StringSlice("disable", nil, "")
	require.NoError(t, flags.Parse([]string{"--severity=info", "--disable=KC01,AL01"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Severity)
	assert.Equal(t, []string{"KC01", "AL01"}, cfg.Disabled)
}

func TestToLintConfig_UnknownRule(t *testing.T) {
	cfg := &Config{Disabled: []string{"ZZ99"}}
	_, err := cfg.ToLintConfig()
	require.Error(t, err)

	var cfgErr *lint.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestToLintConfig_BadSeverity(t *testing.T) {
	cfg := &Config{Rules: map[string]RuleConfig{
		"KC01": {Severity: "fatal"},
	}}
	_, err := cfg.ToLintConfig()
	require.Error(t, err)

	var cfgErr *lint.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "rules.KC01.severity", cfgErr.Key)
}

func TestMinSeverity(t *testing.T) {
	cfg := &Config{Severity: "warning"}
	sev, err := cfg.MinSeverity()
	require.NoError(t, err)
	assert.Equal(t, lint.SeverityWarning, sev)

	cfg = &Config{Severity: "loud"}
	_, err = cfg.MinSeverity()
	assert.Error(t, err)

	cfg = &Config{}
	sev, err = cfg.MinSeverity()
	require.NoError(t, err)
	assert.Equal(t, lint.SeverityHint, sev)
}
