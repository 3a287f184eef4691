//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateHost points PATH and the desktop configuration at a fresh directory
// so that only the executables a test installs are visible.
func isolateHost(t *testing.T) string {
	t.Helper()

	if runtime.GOOS != "linux" {
		t.Skip("host isolation relies on the Linux cascade")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "bin")
	require.NoError(t, os.Mkdir(bin, 0o755))

	t.Setenv("PATH", bin)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("TERMINAL_EMULATOR", "")

	return bin
}

// installScript writes an executable shell script named name into bin.
func installScript(t *testing.T, bin, name, body string) string {
	t.Helper()

	path := filepath.Join(bin, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))

	return path
}
