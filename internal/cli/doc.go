// Package cli implements the sshcopy command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the internal packages for the actual work:
//
//	sshcopy [flags] <destination>  - resolve a key and install it remotely
//	sshcopy keys                   - list local and agent-held identities
//	sshcopy init                   - scaffold a config file
//	sshcopy version                - print version information
//	sshcopy completion             - generate shell completion scripts
//
// The copy operation itself is the root command, mirroring ssh-copy-id:
// one required destination argument, -i to pick an identity, -p to
// override the port.
//
// Global flags (--config, --quiet, --no-color, --dry-run) are defined on
// the root command. Defaults for -i and -p can also come from the optional
// config file; explicit flags win.
package cli
