package identity

import (
	"strings"

	"golang.org/x/crypto/ssh"
)

// PublicKeySuffix is the conventional extension of public key files.
const PublicKeySuffix = ".pub"

// AgentSource is the Source label for key material obtained from the agent.
const AgentSource = "agent"

// Identity is the resolved public key material plus a description of its
// origin: a file path, or the "agent" sentinel. It is constructed once per
// invocation and never mutated.
type Identity struct {
	Source  string
	Content string
}

// KeyLines returns the non-blank lines of the content. Each line is
// conventionally "<algorithm> <base64-data> [comment]".
func (id *Identity) KeyLines() []string {
	var lines []string
	for _, line := range strings.Split(id.Content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// LooksLikePublicKey reports whether every non-blank line of content parses
// in authorized_keys format. Used for an advisory warning only; resolution
// never rejects content on format grounds.
func LooksLikePublicKey(content string) bool {
	checked := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, _, _, _, err := ssh.ParseAuthorizedKey([]byte(line)); err != nil {
			return false
		}
		checked = true
	}
	return checked
}
