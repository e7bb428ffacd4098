package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukehall/sshcopy/internal/identity"
	"github.com/lukehall/sshcopy/internal/ui"
)

// keysCmd lists the identities auto-discovery would consider.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List local and agent-held SSH keys",
	Long: `List the SSH keys sshcopy can see: key files in ~/.ssh and public
keys held by a running ssh-agent.

The first listed file with a public half is what auto-discovery picks
when -i is omitted and ~/.ssh/config names no IdentityFile.

Examples:
  sshcopy keys`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeys(os.Stdout, identity.SystemAgent())
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

// runKeys prints local key files and agent keys to out.
func runKeys(out io.Writer, agent identity.Agent) error {
	keys := identity.ListLocalKeys()

	fmt.Fprintln(out, "Local key files:")
	if len(keys) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, key := range keys {
		marker := ui.Render(ui.SuccessStyle, ui.SymbolSuccess)
		note := ""
		if !key.HasPublic {
			marker = ui.Render(ui.ErrorStyle, ui.SymbolFail)
			note = " (no .pub file, won't be used)"
		}
		fmt.Fprintf(out, "  %s %s [%s]%s\n", marker, key.Path, key.Type, note)
	}

	if preferred := identity.PreferredKey(); preferred != nil {
		fmt.Fprintf(out, "\nAuto-discovery would pick: %s\n", preferred.PublicPath)
	}

	fmt.Fprintln(out, "\nAgent keys:")
	lines, err := agent.List()
	if err != nil {
		fmt.Fprintf(out, "  (unavailable: %v)\n", err)
		return nil
	}
	if len(lines) == 0 {
		fmt.Fprintln(out, "  (none)")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}

	return nil
}
