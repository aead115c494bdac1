package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/runx/core/history"
)

// setupConfigDir points runx at a fresh config dir for one test
func setupConfigDir(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("RUNX_CONFIG_DIR", dir)
	viper.Reset()
	return dir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestExecCommand_Success(t *testing.T) {
	dir := setupConfigDir(t)

	require.NoError(t, execute(t, "exec", "echo", "hello"))

	// Invocation lands in history
	store := history.NewStore(filepath.Join(dir, "history.yaml"))
	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "exec", records[0].Mode)
	assert.Equal(t, "echo hello", records[0].Command)
	assert.True(t, records[0].Success)
	assert.Equal(t, "hello", records[0].Message)
}

func TestExecCommand_Failure(t *testing.T) {
	setupConfigDir(t)

	err := execute(t, "exec", "false")
	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestRunCommand(t *testing.T) {
	setupConfigDir(t)

	require.NoError(t, execute(t, "run", "true"))

	err := execute(t, "run", "sh -c 'exit 3'")
	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestHostsCommands(t *testing.T) {
	dir := setupConfigDir(t)

	require.NoError(t, execute(t, "hosts", "add", "prod",
		"--user", "deploy", "--addr", "prod.example.com", "--key", "/keys/prod"))

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "prod.example.com")

	require.NoError(t, execute(t, "hosts", "list"))
	require.NoError(t, execute(t, "hosts", "remove", "prod"))

	data, err = os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "prod.example.com")
}

func TestHostsAdd_MissingFlags(t *testing.T) {
	setupConfigDir(t)

	err := execute(t, "hosts", "add", "broken", "--user", "u")
	assert.Error(t, err)
}

func TestSSHCommand_UnknownProfile(t *testing.T) {
	setupConfigDir(t)

	err := execute(t, "ssh", "nope", "hostname")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSSHCommand_WithStubBinary(t *testing.T) {
	dir := setupConfigDir(t)

	// Stub ssh on PATH so no network is touched
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ssh")
	require.NoError(t, os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	require.NoError(t, execute(t, "ssh",
		"--user", "deploy", "--host", "example.com", "--key", "/keys/id", "uptime"))

	store := history.NewStore(filepath.Join(dir, "history.yaml"))
	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ssh", records[0].Mode)
	assert.Contains(t, records[0].Command, "deploy@example.com")
	assert.Contains(t, records[0].Command, "StrictHostKeyChecking=no")
}

func TestHistoryCommands(t *testing.T) {
	setupConfigDir(t)

	require.NoError(t, execute(t, "exec", "echo", "one"))
	require.NoError(t, execute(t, "exec", "echo", "two"))

	require.NoError(t, execute(t, "history", "--limit", "1"))
	require.NoError(t, execute(t, "history", "clear"))

	dir := os.Getenv("RUNX_CONFIG_DIR")
	_, err := os.Stat(filepath.Join(dir, "history.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestVersionCommand(t *testing.T) {
	setupConfigDir(t)
	require.NoError(t, execute(t, "version"))
}
