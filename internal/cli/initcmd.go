package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lukehall/sshcopy/internal/config"
	"github.com/lukehall/sshcopy/internal/errors"
	"github.com/lukehall/sshcopy/internal/ui"
)

var (
	initPathFlag  string
	initForceFlag bool
)

// initCmd scaffolds the global config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sshcopy config file",
	Long: `Create a config file with commented defaults.

By default the file is written to ~/.config/sshcopy/config.yaml. A
.sshcopy.yaml in the current directory takes precedence when present.

Examples:
  sshcopy init
  sshcopy init --path .sshcopy.yaml
  sshcopy init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(initPathFlag, initForceFlag, os.Stdout)
	},
}

func init() {
	initCmd.Flags().StringVar(&initPathFlag, "path", "", "where to write the config file")
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite an existing config")
	rootCmd.AddCommand(initCmd)
}

// runInit writes a starter config to path (or the global default location).
func runInit(path string, force bool, out io.Writer) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrHomeDir,
				"Couldn't determine your home directory",
				"Pass --path to choose a config location")
		}
		path = filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config file already exists: %s", path),
			"Use --force to overwrite")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create config directory",
			"Check permissions on "+filepath.Dir(path))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't serialize default config", "")
	}

	header := `# sshcopy configuration.
# Defaults used when the matching flag is omitted:
#   identity: ~/.ssh/id_ed25519    # default for -i
#   port: 2222                     # default for -p
#   ssh_command: ssh               # transport binary to spawn
`
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write config file: "+path,
			"Check directory permissions")
	}

	fmt.Fprintf(out, "%s Wrote %s\n", ui.Render(ui.SuccessStyle, ui.SymbolSuccess), path)
	return nil
}
