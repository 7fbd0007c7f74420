//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Run directly, not through a PTY, since it exits immediately
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "--data")
	require.Contains(t, output, "--config")
	require.Contains(t, output, "counts")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "version").CombinedOutput()
	require.NoError(t, err)
	require.Contains(t, string(out), "searchbar development")
}

func TestCountsCommand(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	out, err := exec.Command(binPath, "counts",
		"--config", tf.ConfigPath(),
		"--data", tf.DataPath(),
		"--log-file", filepath.Join(workspace, "counts.log"),
	).CombinedOutput()
	require.NoError(t, err, string(out))

	require.Regexp(t, `All\s+│\s+4`, string(out))
	require.Regexp(t, `People\s+│\s+2`, string(out))
}
