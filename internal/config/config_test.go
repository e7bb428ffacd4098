package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukehall/sshcopy/internal/errors"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, `
identity: ~/.ssh/id_work
port: 2222
ssh_command: ssh
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "~/.ssh/id_work", cfg.Identity)
	assert.Equal(t, 2222, cfg.Port)
	assert.Equal(t, "ssh", cfg.SSHCommand)
}

func TestLoad_DefaultsMergedIn(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, "port: 2200\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ssh", cfg.SSHCommand, "unset ssh_command should keep the default")
	assert.Empty(t, cfg.Identity)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidPort(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, "port: 70000\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_ExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, ConfigFileName, "port: 22\n")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	found, err := Find("")
	require.NoError(t, err)
	// Resolve symlinks so macOS /private/var temp paths compare equal.
	wantReal, _ := filepath.EvalSymlinks(path)
	gotReal, _ := filepath.EvalSymlinks(found)
	assert.Equal(t, wantReal, gotReal)
}

func TestLoadOrDefault_NoConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
