package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/riveting"
	"github.com/aretw0/riveting/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagged(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addConfigFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riveting.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\ncatalog:\n  backend: redis\n"), 0o644))

	cfg, err := loadConfig(newFlagged(t, "--config", path, "--catalog", "memory"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, config.BackendMemory, cfg.Catalog.Backend)
}

func TestLoadConfig_RejectsBadFlag(t *testing.T) {
	_, err := loadConfig(newFlagged(t, "--log-level", "chatty"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "riveting version "+riveting.Version+"\n", out.String())
}

func TestGraphCommand(t *testing.T) {
	var out bytes.Buffer
	graphCmd.SetOut(&out)
	require.NoError(t, graphCmd.Flags().Set("current", "alert"))
	t.Cleanup(func() { _ = graphCmd.Flags().Set("current", "") })

	require.NoError(t, graphCmd.RunE(graphCmd, nil))
	assert.Contains(t, out.String(), "stateDiagram-v2")
	assert.Contains(t, out.String(), "class alert current")
}
