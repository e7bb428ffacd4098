// Package install delivers resolved key material to a remote host and
// ensures each key line appears in its authorized_keys file exactly once.
//
// The heavy lifting happens remotely: a fixed shell procedure, executed
// through the transport, creates ~/.ssh with owner-only permissions and
// appends each stdin line that is not already present verbatim. Running the
// same install twice therefore never duplicates a line or disturbs
// permissions. The key payload travels exclusively on stdin, never on the
// command line.
package install

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lukehall/sshcopy/internal/errors"
	"github.com/lukehall/sshcopy/internal/identity"
	"github.com/lukehall/sshcopy/internal/logger"
)

// remoteInstallScript is the fixed procedure run on the remote host. It is
// a versioned string template, not generated: the only capability the
// remote side guarantees is a POSIX shell.
//
//	umask 077            - new files are private to the owner
//	mkdir/chmod 700      - ~/.ssh exists with owner-only access
//	touch/chmod 600      - authorized_keys exists, owner read/write only
//	read loop            - each non-blank stdin line is appended unless the
//	                       exact line is already present (grep -qxF)
//
// The loop handles every line independently, so multi-key payloads work.
const remoteInstallScript = `umask 077; mkdir -p .ssh && chmod 700 .ssh; ` +
	`if [ ! -f .ssh/authorized_keys ]; then touch .ssh/authorized_keys && chmod 600 .ssh/authorized_keys; fi; ` +
	`while IFS= read -r key; do ` +
	`[ -n "$key" ] || continue; ` +
	`grep -qxF -- "$key" .ssh/authorized_keys || printf '%s\n' "$key" >> .ssh/authorized_keys; ` +
	`done`

// Destination describes where keys are installed. HostSpec is the opaque
// user@host string handed to the transport unmodified; Port optionally
// overrides the transport's default.
type Destination struct {
	HostSpec string
	Port     int
}

// Hostname returns the host part of the spec, without a user@ prefix. Used
// for SSH config lookups; the transport always receives the full spec.
func (d Destination) Hostname() string {
	if at := strings.Index(d.HostSpec, "@"); at != -1 {
		return d.HostSpec[at+1:]
	}
	return d.HostSpec
}

// Installer runs the idempotent install procedure on a destination.
type Installer struct {
	transport Transport
	log       logger.Logger
	stdout    io.Writer
	stderr    io.Writer
}

// NewInstaller creates an Installer. The transport's diagnostic output is
// inherited by the invoking process so the user sees it directly.
func NewInstaller(transport Transport, log logger.Logger) *Installer {
	return &Installer{
		transport: transport,
		log:       log,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// SetStreams redirects the transport's output streams. Tests use this to
// capture output.
func (i *Installer) SetStreams(stdout, stderr io.Writer) {
	i.stdout = stdout
	i.stderr = stderr
}

// Install normalizes the identity's content and runs the remote procedure
// once, blocking until the transport exits. The call imposes no timeout;
// bounded latency is the caller's concern.
func (i *Installer) Install(id *identity.Identity, dest Destination) error {
	content := Normalize(id.Content)
	if content == "" {
		return errors.New(errors.ErrEmptyIdentity,
			fmt.Sprintf("No key content to install from %s", id.Source),
			"Point -i at a file containing a public key line")
	}

	i.log.Debug("installing %d key line(s) from %s to %s", len(id.KeyLines()), id.Source, dest.HostSpec)

	code, err := i.transport.Run(Request{
		HostSpec: dest.HostSpec,
		Port:     dest.Port,
		Command:  remoteInstallScript,
		Stdin:    strings.NewReader(content),
		Stdout:   i.stdout,
		Stderr:   i.stderr,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		status := "unknown"
		if code > 0 {
			status = fmt.Sprintf("%d", code)
		}
		return errors.New(errors.ErrRemote,
			fmt.Sprintf("ssh exited with status %s", status),
			suggestionForExitStatus(code, dest.HostSpec))
	}

	return nil
}

// Normalize trims surrounding whitespace and guarantees exactly one
// trailing newline, so the remote read loop sees a clean line stream.
// Returns "" for content that is blank after trimming.
func Normalize(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}
	return trimmed + "\n"
}

func suggestionForExitStatus(code int, hostSpec string) string {
	switch code {
	case 255:
		return fmt.Sprintf("Couldn't reach or authenticate to the host. Try manually: ssh %s", hostSpec)
	default:
		return "Inspect the ssh output above for the remote failure"
	}
}
