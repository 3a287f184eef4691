package emulator

import (
	"github.com/wagiedev/terminal-emulator-go/internal/errors"
)

// ExecutionSyntax describes how a command is passed to a terminal emulator.
type ExecutionSyntax int

const (
	// SyntaxE is `terminal -e command`. It is the zero value and the default.
	SyntaxE ExecutionSyntax = iota
	// SyntaxCommand is `terminal command`.
	SyntaxCommand
	// SyntaxDoubleDash is `terminal -- command`.
	SyntaxDoubleDash
	// SyntaxNativeAPI means no terminal process is spawned; the caller uses
	// the platform's console facility instead.
	SyntaxNativeAPI
)

var syntaxTokens = map[ExecutionSyntax]string{
	SyntaxE:          "e",
	SyntaxCommand:    "command",
	SyntaxDoubleDash: "double-dash",
	SyntaxNativeAPI:  "native-api",
}

// Arg returns the argument inserted before the command, if the syntax has one.
func (s ExecutionSyntax) Arg() (string, bool) {
	switch s {
	case SyntaxDoubleDash:
		return "--", true
	case SyntaxE:
		return "-e", true
	default:
		return "", false
	}
}

func (s ExecutionSyntax) String() string {
	switch s {
	case SyntaxCommand:
		return "[command]"
	case SyntaxDoubleDash:
		return "-- [command]"
	case SyntaxE:
		return "-e [command]"
	case SyntaxNativeAPI:
		return "Native API"
	default:
		return "unknown"
	}
}

// Token returns the stable machine-readable name of the syntax.
func (s ExecutionSyntax) Token() string {
	return syntaxTokens[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s ExecutionSyntax) MarshalText() ([]byte, error) {
	token, ok := syntaxTokens[s]
	if !ok {
		return nil, &errors.UnknownSyntaxError{Token: s.String()}
	}

	return []byte(token), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ExecutionSyntax) UnmarshalText(text []byte) error {
	parsed, err := ParseExecutionSyntax(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// ParseExecutionSyntax parses a syntax token such as "double-dash".
func ParseExecutionSyntax(token string) (ExecutionSyntax, error) {
	for s, t := range syntaxTokens {
		if t == token {
			return s, nil
		}
	}

	return SyntaxE, &errors.UnknownSyntaxError{Token: token}
}
