package termemu

import "github.com/wagiedev/terminal-emulator-go/internal/emulator"

// Re-export result types from internal/emulator.

// Emulator describes a detected terminal emulator and how to invoke it.
type Emulator = emulator.Emulator

// ExecutionSyntax describes how a command is passed to a terminal emulator.
type ExecutionSyntax = emulator.ExecutionSyntax

// DetectionMethod identifies the stage that produced an Emulator.
type DetectionMethod = emulator.DetectionMethod

// ProcessSpec is a ready-to-spawn terminal invocation.
type ProcessSpec = emulator.ProcessSpec

// Execution syntax constants.
const (
	// SyntaxE is `terminal -e command`, the default.
	SyntaxE = emulator.SyntaxE
	// SyntaxCommand is `terminal command`.
	SyntaxCommand = emulator.SyntaxCommand
	// SyntaxDoubleDash is `terminal -- command`.
	SyntaxDoubleDash = emulator.SyntaxDoubleDash
	// SyntaxNativeAPI uses the platform console facility; nothing is spawned.
	SyntaxNativeAPI = emulator.SyntaxNativeAPI
)

// Detection method constants, in priority order.
const (
	MethodWindows              = emulator.MethodWindows
	MethodEnvironmentVariable  = emulator.MethodEnvironmentVariable
	MethodTerminalApp          = emulator.MethodTerminalApp
	MethodXdgTerminalExec      = emulator.MethodXdgTerminalExec
	MethodXTerminalEmulator    = emulator.MethodXTerminalEmulator
	MethodGnomeSettings        = emulator.MethodGnomeSettings
	MethodKdeSettings          = emulator.MethodKdeSettings
	MethodHardcodedDesktopEnv  = emulator.MethodHardcodedDesktopEnv
	MethodHardcodedModern      = emulator.MethodHardcodedModern
	MethodHardcodedTraditional = emulator.MethodHardcodedTraditional
	MethodHardcodedExtended    = emulator.MethodHardcodedExtended
)

// Methods returns every detection method in priority order.
func Methods() []DetectionMethod {
	return emulator.Methods()
}

// Candidates returns the hardcoded list walked by method, or nil.
func Candidates(method DetectionMethod) []string {
	return emulator.Candidates(method)
}

// ParseDetectionMethod parses a method token such as "gnome-settings".
func ParseDetectionMethod(token string) (DetectionMethod, error) {
	return emulator.ParseDetectionMethod(token)
}

// ParseExecutionSyntax parses a syntax token such as "double-dash".
func ParseExecutionSyntax(token string) (ExecutionSyntax, error) {
	return emulator.ParseExecutionSyntax(token)
}

// NewEmulator creates an Emulator spawned from the executable at path.
// It is mostly useful to callers that let users override detection.
func NewEmulator(name, path string, syntax ExecutionSyntax, method DetectionMethod) Emulator {
	return emulator.New(name, path, syntax, method)
}

// BuildInvocation returns the process that runs command inside e, or false
// when e uses the platform console API and no process should be spawned.
func BuildInvocation(e Emulator, command ...string) (ProcessSpec, bool) {
	return emulator.BuildInvocation(e, command...)
}
