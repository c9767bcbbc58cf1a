package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"prjdeck/internal/config"
	"prjdeck/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// resetFlags restores every flag to its default so runs do not leak into each other
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	configPath = ""
	defaultConfigPath = filepath.Join(t.TempDir(), "config.json")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAddValidProject(t *testing.T) {
	out, err := executeCommand(t, "add", "--title", "one", "--description", "description", "--people", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "ACTIVE PROJECTS")
	assert.Contains(t, out, "FINISHED PROJECTS")
	assert.Contains(t, out, "1. one")
	assert.Contains(t, out, "3 persons assigned")
}

func TestAddInvalidProject(t *testing.T) {
	_, err := executeCommand(t, "add", "--title", "", "--description", "x", "--people", "2")
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = executeCommand(t, "add", "--title", "t", "--description", "x", "--people", "7")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAddUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.Default()
	cfg.PeopleMax = 10
	require.NoError(t, cfg.Save(path))

	out, err := executeCommand(t, "--config", path, "add", "--title", "t", "--description", "x", "--people", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "7 persons assigned")
}

func TestConfigInitSetGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	out, err := executeCommand(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully.")
	_, err = os.Stat(path)
	require.NoError(t, err)

	out, err = executeCommand(t, "--config", path, "config", "set", "--people-max", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration updated successfully.")

	out, err = executeCommand(t, "--config", path, "config", "get", "people-max")
	require.NoError(t, err)
	assert.Equal(t, "8\n", out)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8.0, loaded.PeopleMax)
}

func TestConfigSetRejectsInvalidBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	_, err := executeCommand(t, "--config", path, "config", "set", "--people-min", "9")
	assert.ErrorContains(t, err, "invalid configuration")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestConfigGetUnknownKey(t *testing.T) {
	_, err := executeCommand(t, "config", "get", "server-url")
	assert.ErrorContains(t, err, "unknown configuration key")
}

func TestConfigPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	out, err := executeCommand(t, "--config", path, "config", "paths")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "Config file: Does not exist")
}
