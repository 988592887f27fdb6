package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_Arguments(t *testing.T) {
	output := new(bytes.Buffer)

	require.NoError(t, run([]string{"--logger.level", "error", "insert", "5", "insert", "1", "insert", "3", "delete", "3"}, output))
	require.Equal(t, "delete 3: true\n1\n5\n", output.String())
}

func TestRun_NegativeArguments(t *testing.T) {
	output := new(bytes.Buffer)

	require.NoError(t, run([]string{"--logger.level", "error", "insert", "-1", "insert", "2", "contains", "-1"}, output))
	require.Equal(t, "contains -1: true\n-1\n2\n", output.String())
}

func TestRun_Script(t *testing.T) {
	scriptPath := filepath.Join(t.TempDir(), "commands.txt")
	require.NoError(t, os.WriteFile(scriptPath, []byte("insert 2\ninsert 2 # duplicate\ndelete 2\nsize\n"), 0o600))

	output := new(bytes.Buffer)
	require.NoError(t, run([]string{"--logger.level", "error", "--script", scriptPath, "--print.final=false"}, output))
	require.Equal(t, "delete 2: true\n1\n", output.String())
}

func TestRun_EmptyList(t *testing.T) {
	output := new(bytes.Buffer)

	require.NoError(t, run([]string{"--logger.level", "error", "deleteFront", "deleteRear"}, output))
	require.Equal(t, "List is Empty.\n", output.String())
}

func TestRun_Errors(t *testing.T) {
	require.ErrorIs(t, run([]string{"--logger.level", "error", "push", "1"}, new(bytes.Buffer)), ErrUnknownCommand)
	require.Error(t, run([]string{"--logger.level", "loud"}, new(bytes.Buffer)))
	require.Error(t, run([]string{"--script", filepath.Join(t.TempDir(), "missing.txt")}, new(bytes.Buffer)))
	require.Error(t, run([]string{"--unknown"}, new(bytes.Buffer)))
}
