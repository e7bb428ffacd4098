package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukehall/sshcopy/internal/ui"
)

// Global flags available on the root command.
var (
	configFlag   string
	quietFlag    bool
	noColorFlag  bool
	identityFlag string
	portFlag     int
	dryRunFlag   bool
)

// rootCmd is the copy operation itself, mirroring ssh-copy-id.
var rootCmd = &cobra.Command{
	Use:   "sshcopy [flags] <destination>",
	Short: "Install SSH public keys on a remote host",
	Long: `Install one or more SSH public keys into a remote host's
~/.ssh/authorized_keys, without ever duplicating an entry.

The key to install is located in priority order: the -i flag (or the
config default), the IdentityFile from ~/.ssh/config for the destination,
the conventional files in ~/.ssh, and finally a running ssh-agent.

The destination is an opaque user@host string handed to ssh unchanged.

Examples:
  sshcopy alice@example.com
  sshcopy -i ~/.ssh/id_work alice@example.com
  sshcopy -p 2222 deploy@10.0.0.5
  sshcopy --dry-run alice@example.com`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetColorEnabled(!noColorFlag)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCopy(args[0], CopyOptions{
			ConfigPath: configFlag,
			Identity:   identityFlag,
			Port:       portFlag,
			DryRun:     dryRunFlag,
			Quiet:      quietFlag,
			Out:        os.Stdout,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVarP(&identityFlag, "identity", "i", "", "identity file (e.g. ~/.ssh/id_ed25519.pub)")
	rootCmd.Flags().IntVarP(&portFlag, "port", "p", 0, "port to connect to on the remote host")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "resolve and show what would be installed without connecting")
}

// Execute runs the root command. On failure the formatted error goes to
// stderr and the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
