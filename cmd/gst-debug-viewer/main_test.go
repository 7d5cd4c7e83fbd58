package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFindCommand(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "gst.log")
	require.NoError(t, os.WriteFile(logPath, []byte("one\ntwo caps\nthree caps\n"), 0o644))

	out, err := execute(t, "find", "--log-level", "off", "--config", filepath.Join(dir, "none.toml"), logPath, "caps")
	require.NoError(t, err)
	assert.Equal(t, "2:two caps\n3:three caps\n", out)
}

func TestFindCommand_NeedsTwoArgs(t *testing.T) {
	_, err := execute(t, "find", "only-file")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"+dev\n", out)
}

func TestRootRequiresTerminal(t *testing.T) {
	if _, err := execute(t); err == nil {
		t.Skip("stdout is a terminal")
	} else {
		assert.ErrorIs(t, err, errNotTerminal)
	}
}
