package emulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildInvocation(t *testing.T) {
	tests := []struct {
		name    string
		syntax  ExecutionSyntax
		command []string
		want    []string
	}{
		{
			name:    "dash e",
			syntax:  SyntaxE,
			command: []string{"ls", "-la"},
			want:    []string{"/usr/bin/term", "-e", "ls", "-la"},
		},
		{
			name:    "double dash",
			syntax:  SyntaxDoubleDash,
			command: []string{"htop"},
			want:    []string{"/usr/bin/term", "--", "htop"},
		},
		{
			name:    "double dash keeps caller separator",
			syntax:  SyntaxDoubleDash,
			command: []string{"vim", "--", "file"},
			want:    []string{"/usr/bin/term", "--", "vim", "--", "file"},
		},
		{
			name:    "command",
			syntax:  SyntaxCommand,
			command: []string{"top", "-d", "1"},
			want:    []string{"/usr/bin/term", "top", "-d", "1"},
		},
		{
			name:    "empty command",
			syntax:  SyntaxE,
			command: nil,
			want:    []string{"/usr/bin/term", "-e"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New("term", "/usr/bin/term", tc.syntax, MethodHardcodedModern)

			spec, ok := BuildInvocation(e, tc.command...)
			require.True(t, ok)
			require.Equal(t, "/usr/bin/term", spec.Path)
			require.Equal(t, tc.want, spec.Argv())
		})
	}
}

func TestBuildInvocation_DoubleDashInsertedOnce(t *testing.T) {
	e := New("kgx", "/usr/bin/kgx", SyntaxDoubleDash, MethodHardcodedDesktopEnv)

	spec, ok := BuildInvocation(e, "ls")
	require.True(t, ok)

	count := 0
	for _, arg := range spec.Args {
		if arg == "--" {
			count++
		}
	}

	require.Equal(t, 1, count)
}

func TestBuildInvocation_NativeAPI(t *testing.T) {
	e := NativeAPI("Windows Console", MethodWindows)

	for _, command := range [][]string{nil, {"cmd.exe"}, {"ls", "-la"}} {
		_, ok := BuildInvocation(e, command...)
		require.False(t, ok)
	}
}

func TestBuildInvocation_DoesNotAliasCommand(t *testing.T) {
	e := New("xterm", "/usr/bin/xterm", SyntaxCommand, MethodHardcodedTraditional)
	command := []string{"ls", "-la"}

	spec, ok := BuildInvocation(e, command...)
	require.True(t, ok)

	command[0] = "rm"
	require.Equal(t, []string{"ls", "-la"}, spec.Args)
}

func TestProcessSpec_Command(t *testing.T) {
	spec := ProcessSpec{Path: "/usr/bin/xterm", Args: []string{"-e", "ls"}}

	cmd := spec.Command(context.Background())
	require.Equal(t, "/usr/bin/xterm", cmd.Path)
	require.Equal(t, []string{"/usr/bin/xterm", "-e", "ls"}, cmd.Args)
	require.Nil(t, cmd.Process)
}
