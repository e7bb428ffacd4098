package identity

import (
	"fmt"
	"net"
	"os"
	"strings"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// Agent lists the public keys held by a running key agent, formatted as
// authorized_keys lines. Implemented by the SSH_AUTH_SOCK agent and by
// fakes in tests.
type Agent interface {
	List() ([]string, error)
}

// systemAgent talks to the agent named by SSH_AUTH_SOCK. The connection is
// opened per query; a copy invocation asks at most once.
type systemAgent struct{}

// SystemAgent returns a client for the local key agent.
func SystemAgent() Agent {
	return systemAgent{}
}

func (systemAgent) List() ([]string, error) {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil, fmt.Errorf("no key agent running (SSH_AUTH_SOCK not set)")
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("couldn't reach key agent: %w", err)
	}
	defer conn.Close()

	keys, err := agent.NewClient(conn).List()
	if err != nil {
		return nil, fmt.Errorf("key agent list failed: %w", err)
	}

	var lines []string
	for _, key := range keys {
		line := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(key)))
		if line == "" {
			continue
		}
		if key.Comment != "" {
			line += " " + key.Comment
		}
		lines = append(lines, line)
	}
	return lines, nil
}
