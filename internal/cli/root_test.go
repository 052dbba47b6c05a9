package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Metadata(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "sqlstyle", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	for _, flag := range []string{"config", "output", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	subs := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subs[sub.Name()] = true
	}
	for _, name := range []string{"check", "fix", "rules", "init", "version"} {
		assert.True(t, subs[name], "subcommand %q should be registered", name)
	}
}

func TestRootCmd_Help(t *testing.T) {
	out, err := executeRoot(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "check")
	assert.Contains(t, out, "rules")
}

func TestRootCmd_CheckWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sqlstyle.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("disabled:\n  - KC01\n"), 0o644))

	sqlPath := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(sqlPath, []byte("select id\nfrom orders;\n"), 0o644))

	// With KC01 disabled via config, the lowercase keywords pass.
	out, err := executeRoot(t, "--config", cfgPath, "check", sqlPath)
	require.NoError(t, err)
	assert.Contains(t, out, "All clean")
}

func TestRootCmd_BadConfigIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sqlstyle.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("disabled:\n  - ZZ99\n"), 0o644))

	sqlPath := filepath.Join(dir, "q.sql")
	require.NoError(t, os.WriteFile(sqlPath, []byte("SELECT 1;\n"), 0o644))

	_, err := executeRoot(t, "--config", cfgPath, "check", sqlPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZZ99")
}
