package identity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferKeyType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/home/u/.ssh/id_ed25519", want: "ed25519"},
		{path: "/home/u/.ssh/id_rsa", want: "rsa"},
		{path: "/home/u/.ssh/id_ecdsa", want: "ecdsa"},
		{path: "/home/u/.ssh/id_dsa", want: "dsa"},
		{path: "/home/u/.ssh/identity", want: "unknown"},
		{path: "/home/u/.ssh/backup_rsa_key", want: "rsa"},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, inferKeyType(tt.path))
		})
	}
}

func TestDefaultKeyPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths := DefaultKeyPaths()
	require.Len(t, paths, len(defaultCandidates))
	assert.Equal(t, filepath.Join(home, ".ssh", "id_rsa"), paths[0])
	for _, p := range paths {
		assert.Contains(t, p, ".ssh")
	}
}

func TestListLocalKeys(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(home, ".ssh", "id_ed25519"), "private\n")
	writeFile(t, filepath.Join(home, ".ssh", "id_ed25519.pub"), "ssh-ed25519 AAAA a\n")
	writeFile(t, filepath.Join(home, ".ssh", "id_ecdsa"), "private only\n")

	keys := ListLocalKeys()
	require.Len(t, keys, 2)

	byType := map[string]KeyInfo{}
	for _, k := range keys {
		byType[k.Type] = k
	}

	assert.True(t, byType["ed25519"].HasPublic)
	assert.False(t, byType["ecdsa"].HasPublic)
}

func TestPreferredKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("none", func(t *testing.T) {
		assert.Nil(t, PreferredKey())
	})

	t.Run("first with public half wins", func(t *testing.T) {
		writeFile(t, filepath.Join(home, ".ssh", "id_ed25519"), "private\n")
		writeFile(t, filepath.Join(home, ".ssh", "id_ed25519.pub"), "ssh-ed25519 AAAA a\n")
		writeFile(t, filepath.Join(home, ".ssh", "id_rsa"), "private, no pub\n")

		key := PreferredKey()
		require.NotNil(t, key)
		assert.Equal(t, "ed25519", key.Type)
	})
}
