package install

import (
	"io"
	"os/exec"
	"strconv"

	"github.com/lukehall/sshcopy/internal/errors"
)

// Request describes one transport invocation: where to connect, what to run
// there, and the streams wired to the child process.
type Request struct {
	HostSpec string
	Port     int // 0 means the transport's default
	Command  string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// Transport executes a command on a destination through an external secure
// channel. Implemented by ExecTransport (the ssh binary) and by fakes in
// tests.
type Transport interface {
	// Run blocks until the child process exits. A non-zero exit code with
	// nil error means the remote command ran but failed; the code is -1
	// when the process was terminated by a signal. An error means the
	// process could not be launched at all.
	Run(req Request) (exitCode int, err error)
}

// ExecTransport spawns the ssh client binary as a synchronous child
// process. Exactly one child exists per Run call.
type ExecTransport struct {
	// Binary is the transport command name, resolved on PATH.
	// Empty means "ssh".
	Binary string
}

// Run spawns the transport and waits for it to terminate. The stdin reader
// is drained and the child's input channel closed by the process machinery,
// so the remote read loop always sees end-of-input.
func (t *ExecTransport) Run(req Request) (int, error) {
	binary := t.Binary
	if binary == "" {
		binary = "ssh"
	}

	var args []string
	if req.Port > 0 {
		args = append(args, "-p", strconv.Itoa(req.Port))
	}
	args = append(args, req.HostSpec, req.Command)

	cmd := exec.Command(binary, args...)
	cmd.Stdin = req.Stdin
	cmd.Stdout = req.Stdout
	cmd.Stderr = req.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			// ExitCode is -1 when the child was killed by a signal.
			return exitErr.ExitCode(), nil
		}
		return -1, errors.WrapWithCode(err, errors.ErrSpawn,
			"Couldn't launch "+binary,
			"Install OpenSSH and make sure "+binary+" is on your PATH")
	}

	return 0, nil
}
