package emulator

import (
	"context"
	"os/exec"
)

// ProcessSpec is a ready-to-spawn terminal invocation.
type ProcessSpec struct {
	// Path is the terminal emulator executable.
	Path string
	// Args are the arguments after Path: the syntax prefix, if any,
	// followed by the target command.
	Args []string
}

// Argv returns the full argument vector, starting with Path.
func (p ProcessSpec) Argv() []string {
	return append([]string{p.Path}, p.Args...)
}

// Command creates, but does not start, the process described by p.
// The process is killed if ctx is done before it exits.
func (p ProcessSpec) Command(ctx context.Context) *exec.Cmd {
	//nolint:gosec // G204: the terminal path comes from detection
	return exec.CommandContext(ctx, p.Path, p.Args...)
}

// BuildInvocation returns the process that runs command inside e.
//
// It reports false for SyntaxNativeAPI emulators, for which the caller must
// use the platform's console allocation instead. The syntax prefix ("-e",
// "--" or nothing) is inserted immediately before command; no other tokens
// are added or removed.
func BuildInvocation(e Emulator, command ...string) (ProcessSpec, bool) {
	if e.IsNativeAPI() {
		return ProcessSpec{}, false
	}

	args := make([]string, 0, len(command)+1)
	if arg, ok := e.Syntax().Arg(); ok {
		args = append(args, arg)
	}

	args = append(args, command...)

	return ProcessSpec{Path: e.Path(), Args: args}, true
}
