package shell_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/mathshell/internal/shell"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, _, err := shell.ParseConfig(nil, shell.Options()...)
	require.NoError(t, err)
	assert.Empty(t, cfg.Exprs)
	assert.Equal(t, "%g", cfg.Fmt)
	assert.Equal(t, "mathshell > ", cfg.Prompt)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Echo)
	assert.Empty(t, cfg.LogFile)
}

func TestParseConfigArgs(t *testing.T) {
	cfg, _, err := shell.ParseConfig([]string{"--echo", "--fmt=%.3f", "--log-level=debug", "1+1", "2*3"}, shell.Options()...)
	require.NoError(t, err)
	assert.True(t, cfg.Echo)
	assert.Equal(t, "%.3f", cfg.Fmt)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"1+1", "2*3"}, cfg.Exprs)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("MATHSHELL_FMT", "%e")
	t.Setenv("MATHSHELL_LOG_LEVEL", "error")
	cfg, _, err := shell.ParseConfig(nil, shell.Options()...)
	require.NoError(t, err)
	assert.Equal(t, "%e", cfg.Fmt)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParseConfigBadLevel(t *testing.T) {
	_, _, err := shell.ParseConfig([]string{"--log-level=loud"}, shell.Options()...)
	assert.Error(t, err)
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"fmt": "%.1f", "echo": true, "log_level": "info"}`), 0o644)
	require.NoError(t, err)
	return path
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t)
	cfg, _, err := shell.ParseConfig(nil, shell.Options(path)...)
	require.NoError(t, err)
	assert.Equal(t, "%.1f", cfg.Fmt)
	assert.True(t, cfg.Echo)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseConfigFlagFile(t *testing.T) {
	path := writeConfig(t)
	cfg, _, err := shell.ParseConfig([]string{"--config", path, "--fmt=%g"}, shell.Options()...)
	require.NoError(t, err)
	assert.Equal(t, "%g", cfg.Fmt, "flags override the config file")
	assert.True(t, cfg.Echo)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseConfigMissingFile(t *testing.T) {
	// Missing default config files are ignored.
	cfg, _, err := shell.ParseConfig(nil, shell.Options(filepath.Join(t.TempDir(), "nope.json"))...)
	require.NoError(t, err)
	assert.Equal(t, "%g", cfg.Fmt)
}
