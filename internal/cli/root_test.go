package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"identity", "port", "dry-run"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "root command should define --%s", name)
	}
	for _, name := range []string{"config", "quiet", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "root command should define persistent --%s", name)
	}

	assert.Equal(t, "i", rootCmd.Flags().Lookup("identity").Shorthand)
	assert.Equal(t, "p", rootCmd.Flags().Lookup("port").Shorthand)
}

func TestRootCommand_RequiresDestination(t *testing.T) {
	require.NotNil(t, rootCmd.Args)
	assert.Error(t, rootCmd.Args(rootCmd, nil), "destination argument is required")
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"u@h"}))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"u@h", "extra"}))
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"keys", "init", "version", "completion"} {
		assert.True(t, names[want], "expected %q subcommand", want)
	}
}
