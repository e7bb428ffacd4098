package identity

import (
	"path/filepath"
	"strings"
)

// KeyInfo describes one local SSH key pair.
type KeyInfo struct {
	Path       string // Full path to private key
	Type       string // Key type (ed25519, rsa, ecdsa, dsa)
	PublicPath string // Path to public key
	HasPublic  bool   // Whether the public key file exists
}

// DefaultKeyPaths returns the standard private key locations probed by
// ListLocalKeys.
func DefaultKeyPaths() []string {
	home, err := homeDir()
	if err != nil {
		return nil
	}

	var paths []string
	for _, name := range defaultCandidates {
		private := strings.TrimSuffix(name, PublicKeySuffix)
		paths = append(paths, filepath.Join(home, ".ssh", private))
	}
	return paths
}

// ListLocalKeys searches the standard locations for existing SSH keys.
func ListLocalKeys() []KeyInfo {
	var keys []KeyInfo

	for _, path := range DefaultKeyPaths() {
		pubPath := path + PublicKeySuffix
		hasPublic := fileExists(pubPath)
		if !fileExists(path) && !hasPublic {
			continue
		}

		keys = append(keys, KeyInfo{
			Path:       path,
			Type:       inferKeyType(path),
			PublicPath: pubPath,
			HasPublic:  hasPublic,
		})
	}

	return keys
}

// PreferredKey returns the key auto-discovery would pick: the first listed
// key with a public half, in candidate order. Returns nil when none exists.
func PreferredKey() *KeyInfo {
	for _, key := range ListLocalKeys() {
		if key.HasPublic {
			k := key
			return &k
		}
	}
	return nil
}

// inferKeyType determines the key type from the filename.
func inferKeyType(path string) string {
	base := filepath.Base(path)
	switch {
	case strings.Contains(base, "ed25519"):
		return "ed25519"
	case strings.Contains(base, "ecdsa"):
		return "ecdsa"
	case strings.Contains(base, "rsa"):
		return "rsa"
	case strings.Contains(base, "dsa"):
		return "dsa"
	default:
		return "unknown"
	}
}
