package cli

import (
	"fmt"
	"io"

	"github.com/lukehall/sshcopy/internal/config"
	"github.com/lukehall/sshcopy/internal/identity"
	"github.com/lukehall/sshcopy/internal/install"
	"github.com/lukehall/sshcopy/internal/logger"
	"github.com/lukehall/sshcopy/internal/ui"
	"github.com/lukehall/sshcopy/internal/util"
)

// CopyOptions holds options for the copy operation.
type CopyOptions struct {
	ConfigPath string // --config
	Identity   string // -i, overrides the config default
	Port       int    // -p, overrides the config default
	DryRun     bool
	Quiet      bool
	Out        io.Writer

	// Transport overrides the spawned ssh binary. Tests use this; when
	// nil, the binary from config is spawned.
	Transport install.Transport

	// Agent overrides the key agent client. Tests use this.
	Agent identity.Agent
}

// runCopy is the whole copy workflow: load config, resolve an identity,
// install it on the destination.
func runCopy(destination string, opts CopyOptions) error {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return err
	}

	identityPath := opts.Identity
	if identityPath == "" {
		identityPath = cfg.Identity
	}
	port := opts.Port
	if port == 0 {
		port = cfg.Port
	}

	dest := install.Destination{HostSpec: destination, Port: port}
	log := logger.NewEnvLogger("[sshcopy]")

	resolver := identity.NewResolver(log)
	resolver.SetDestinationHost(dest.Hostname())
	if opts.Agent != nil {
		resolver.SetAgent(opts.Agent)
	}

	id, err := resolver.Resolve(identityPath)
	if err != nil {
		return err
	}

	keyCount := len(id.KeyLines())
	if !opts.Quiet {
		fmt.Fprintf(opts.Out, "%s %s\n", ui.Render(ui.MutedStyle, "Source:"), id.Source)
		fmt.Fprintf(opts.Out, "%s %s\n", ui.Render(ui.MutedStyle, "Target:"), destination)
	}

	if opts.DryRun {
		fmt.Fprintf(opts.Out, "%s would install %d %s from %s\n",
			ui.Render(ui.InfoStyle, ui.SymbolArrow),
			keyCount, util.Pluralize(keyCount, "key", "keys"), id.Source)
		return nil
	}

	transport := opts.Transport
	if transport == nil {
		transport = &install.ExecTransport{Binary: cfg.SSHCommand}
	}

	installer := install.NewInstaller(transport, log)
	if err := installer.Install(id, dest); err != nil {
		return err
	}

	if !opts.Quiet {
		fmt.Fprintf(opts.Out, "\n%s Number of key(s) added: %d\n",
			ui.Render(ui.SuccessStyle, ui.SymbolSuccess), keyCount)
		fmt.Fprintf(opts.Out, "\nNow try logging into the machine, with:   \"ssh '%s'\"\n", destination)
		fmt.Fprintln(opts.Out, "and check to make sure that only the key(s) you wanted were added.")
	}

	return nil
}
