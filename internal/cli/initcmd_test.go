package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukehall/sshcopy/internal/config"
	"github.com/lukehall/sshcopy/internal/errors"
)

func TestRunInit_WritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer
	require.NoError(t, runInit(path, false, &out))
	assert.Contains(t, out.String(), path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ssh", cfg.SSHCommand)
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, runInit(path, false, io.Discard))

	err := runInit(path, false, io.Discard)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--force")
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, runInit(path, false, io.Discard))
	require.NoError(t, runInit(path, true, io.Discard))
}

func TestRunInit_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, runInit("", false, io.Discard))

	expected := filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile)
	_, err := config.Load(expected)
	require.NoError(t, err)
}
