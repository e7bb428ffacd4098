package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cannedAgent returns fixed lines or an error.
type cannedAgent struct {
	lines []string
	err   error
}

func (a cannedAgent) List() ([]string, error) { return a.lines, a.err }

func TestRunKeys_ListsLocalAndAgent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	sshDir := filepath.Join(home, ".ssh")
	require.NoError(t, os.MkdirAll(sshDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(sshDir, "id_ed25519"), []byte("private\n"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(sshDir, "id_ed25519.pub"), []byte("ssh-ed25519 AAAA a\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sshDir, "id_rsa"), []byte("private only\n"), 0600))

	var out bytes.Buffer
	err := runKeys(&out, cannedAgent{lines: []string{"ssh-ed25519 BBBB agent-key"}})
	require.NoError(t, err)

	assert.Contains(t, out.String(), filepath.Join(sshDir, "id_ed25519"))
	assert.Contains(t, out.String(), "no .pub file")
	assert.Contains(t, out.String(), "Auto-discovery would pick: "+filepath.Join(sshDir, "id_ed25519.pub"))
	assert.Contains(t, out.String(), "ssh-ed25519 BBBB agent-key")
}

func TestRunKeys_NothingAnywhere(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	err := runKeys(&out, cannedAgent{})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Local key files:\n  (none)")
	assert.Contains(t, out.String(), "Agent keys:\n  (none)")
}

func TestRunKeys_AgentUnavailable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var out bytes.Buffer
	err := runKeys(&out, cannedAgent{err: fmt.Errorf("no key agent running")})
	require.NoError(t, err, "an unreachable agent is informational, not an error")

	assert.Contains(t, out.String(), "unavailable")
}
