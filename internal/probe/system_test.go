package probe

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wagiedev/terminal-emulator-go/internal/emulator"
)

// withFakeBin points PATH at a fresh directory of helper scripts.
func withFakeBin(t *testing.T, scripts map[string]string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("helper scripts require a POSIX shell")
	}

	dir := t.TempDir()
	for name, body := range scripts {
		_, err := writeScript(dir, name, body)
		require.NoError(t, err)
	}

	t.Setenv("PATH", dir)

	return dir
}

func TestOSSystem_EnvironmentVariable(t *testing.T) {
	dir := withFakeBin(t, map[string]string{"myterm": "exit 0", "xterm": "exit 0"})
	t.Setenv(DefaultEnvVar, "myterm")

	term, err := NewDetector(&Config{Platform: "linux"}).Detect(context.Background())
	require.NoError(t, err)
	require.Equal(t, emulator.MethodEnvironmentVariable, term.Method())
	require.Equal(t, filepath.Join(dir, "myterm"), term.Path())
}

func TestOSSystem_XdgTerminalExecQuery(t *testing.T) {
	dir := withFakeBin(t, map[string]string{
		"xdg-terminal-exec": `[ "$1" = "--print-id" ] && echo kitty.desktop && exit 0
exit 2`,
	})
	t.Setenv(DefaultEnvVar, "")

	term, err := NewDetector(&Config{Platform: "linux"}).Detect(context.Background())
	require.NoError(t, err)
	require.Equal(t, emulator.MethodXdgTerminalExec, term.Method())
	require.Equal(t, emulator.SyntaxCommand, term.Syntax())
	require.Equal(t, filepath.Join(dir, "xdg-terminal-exec"), term.Path())
	require.Equal(t, "kitty", term.Name())
}

func TestOSSystem_HungHelperDeclines(t *testing.T) {
	dir := withFakeBin(t, map[string]string{
		"xdg-terminal-exec": "# --print-id\nexec sleep 10",
		"xterm":             "exit 0",
	})
	t.Setenv("PATH", dir+string(filepath.ListSeparator)+"/usr/bin"+string(filepath.ListSeparator)+"/bin")
	t.Setenv(DefaultEnvVar, "")

	d := NewDetector(&Config{
		Platform:     "linux",
		QueryTimeout: 100 * time.Millisecond,
		Only: []emulator.DetectionMethod{
			emulator.MethodXdgTerminalExec,
			emulator.MethodHardcodedTraditional,
		},
	})

	start := time.Now()
	term, err := d.Detect(context.Background())
	require.NoError(t, err)
	require.Less(t, time.Since(start), 5*time.Second)
	require.Equal(t, emulator.MethodHardcodedTraditional, term.Method())
	require.Equal(t, filepath.Join(dir, "xterm"), term.Path())
}

func TestOSSystem_XdgTerminalExecWithoutPrintIDIsNotRun(t *testing.T) {
	dir := withFakeBin(t, map[string]string{
		"xdg-terminal-exec": `touch "$(dirname "$0")/launched"; exit 0`,
		"xterm":             "exit 0",
	})
	t.Setenv("PATH", dir+string(filepath.ListSeparator)+"/usr/bin"+string(filepath.ListSeparator)+"/bin")
	t.Setenv(DefaultEnvVar, "")

	term, err := NewDetector(&Config{Platform: "linux"}).Detect(context.Background())
	require.NoError(t, err)
	require.Equal(t, emulator.MethodHardcodedTraditional, term.Method())
	require.NoFileExists(t, filepath.Join(dir, "launched"))
}

func TestOSSystem_FailingHelperDeclines(t *testing.T) {
	withFakeBin(t, map[string]string{
		"gsettings": "echo 'No such schema' >&2; exit 1",
		"mlterm":    "exit 0",
		"xterm":     "exit 0",
	})
	t.Setenv(DefaultEnvVar, "")

	term, err := NewDetector(&Config{Platform: "linux"}).Detect(context.Background())
	require.NoError(t, err)
	require.Equal(t, emulator.MethodHardcodedTraditional, term.Method())
	require.Equal(t, "xterm", term.Name())
}
