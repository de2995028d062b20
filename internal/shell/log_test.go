package shell_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/mathshell/internal/shell"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "mathshell.log")
	log, closer, err := shell.NewLogger(&buf, "info", path)
	require.NoError(t, err)
	log.Info("evaluated", "expr", "1+1")
	log.Debug("hidden")
	require.NoError(t, closer.Close())

	assert.Contains(t, buf.String(), "msg=evaluated")
	assert.NotContains(t, buf.String(), "hidden")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &rec))
	assert.Equal(t, "evaluated", rec["msg"])
	assert.Equal(t, "1+1", rec["expr"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestNewLoggerNoFile(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := shell.NewLogger(&buf, "", "")
	require.NoError(t, err)
	log.Info("shown")
	log.Debug("hidden")
	assert.NoError(t, closer.Close())
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, _, err := shell.NewLogger(&bytes.Buffer{}, "loud", "")
	assert.Error(t, err)
}
