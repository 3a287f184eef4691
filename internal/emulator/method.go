package emulator

import (
	"github.com/wagiedev/terminal-emulator-go/internal/errors"
)

// DetectionMethod identifies the stage that produced an Emulator.
// Methods are declared in cascade priority order, so comparing two methods
// with < orders them by priority.
type DetectionMethod int

const (
	// MethodWindows uses the Windows console API.
	MethodWindows DetectionMethod = iota
	// MethodEnvironmentVariable uses the TERMINAL_EMULATOR environment variable.
	MethodEnvironmentVariable
	// MethodTerminalApp uses Terminal.app on macOS.
	MethodTerminalApp
	// MethodXdgTerminalExec uses xdg-terminal-exec.
	MethodXdgTerminalExec
	// MethodXTerminalEmulator uses the Debian x-terminal-emulator alternative.
	MethodXTerminalEmulator
	// MethodGnomeSettings uses the GNOME default terminal setting.
	MethodGnomeSettings
	// MethodKdeSettings uses the KDE TerminalApplication setting.
	MethodKdeSettings
	// MethodHardcodedDesktopEnv uses the desktop environment terminal list.
	MethodHardcodedDesktopEnv
	// MethodHardcodedModern uses the modern terminal list.
	MethodHardcodedModern
	// MethodHardcodedTraditional uses the traditional terminal list.
	MethodHardcodedTraditional
	// MethodHardcodedExtended uses the extended terminal list.
	MethodHardcodedExtended
)

type methodInfo struct {
	token string
	label string
}

var methodInfos = []methodInfo{
	MethodWindows:              {token: "windows", label: "Windows"},
	MethodEnvironmentVariable:  {token: "env-var", label: "Environment Variable"},
	MethodTerminalApp:          {token: "terminal-app", label: "Terminal.app"},
	MethodXdgTerminalExec:      {token: "xdg-terminal-exec", label: "xdg-terminal-exec"},
	MethodXTerminalEmulator:    {token: "x-terminal-emulator", label: "x-terminal-emulator"},
	MethodGnomeSettings:        {token: "gnome-settings", label: "GNOME Settings"},
	MethodKdeSettings:          {token: "kde-settings", label: "KDE Settings"},
	MethodHardcodedDesktopEnv:  {token: "hardcoded-desktop-env", label: "Hardcoded Desktop Environment List"},
	MethodHardcodedModern:      {token: "hardcoded-modern", label: "Hardcoded Modern List"},
	MethodHardcodedTraditional: {token: "hardcoded-traditional", label: "Hardcoded Traditional List"},
	MethodHardcodedExtended:    {token: "hardcoded-extended", label: "Hardcoded Extended List"},
}

// Methods returns every detection method in priority order.
func Methods() []DetectionMethod {
	methods := make([]DetectionMethod, len(methodInfos))
	for i := range methodInfos {
		methods[i] = DetectionMethod(i)
	}

	return methods
}

// IsHardcoded reports whether the method walks a hardcoded candidate list.
func (m DetectionMethod) IsHardcoded() bool {
	switch m {
	case MethodHardcodedDesktopEnv,
		MethodHardcodedModern,
		MethodHardcodedTraditional,
		MethodHardcodedExtended:
		return true
	default:
		return false
	}
}

func (m DetectionMethod) valid() bool {
	return m >= 0 && int(m) < len(methodInfos)
}

func (m DetectionMethod) String() string {
	if !m.valid() {
		return "unknown"
	}

	return methodInfos[m].label
}

// Token returns the stable machine-readable name of the method, as used to
// enable or disable stages.
func (m DetectionMethod) Token() string {
	if !m.valid() {
		return ""
	}

	return methodInfos[m].token
}

// MarshalText implements encoding.TextMarshaler.
func (m DetectionMethod) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, &errors.UnknownMethodError{Token: m.String()}
	}

	return []byte(m.Token()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DetectionMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseDetectionMethod(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// ParseDetectionMethod parses a method token such as "gnome-settings".
func ParseDetectionMethod(token string) (DetectionMethod, error) {
	for i, info := range methodInfos {
		if info.token == token {
			return DetectionMethod(i), nil
		}
	}

	return 0, &errors.UnknownMethodError{Token: token}
}

// ParseDetectionMethods parses a list of method tokens, failing on the first
// unknown one.
func ParseDetectionMethods(tokens []string) ([]DetectionMethod, error) {
	methods := make([]DetectionMethod, 0, len(tokens))

	for _, token := range tokens {
		m, err := ParseDetectionMethod(token)
		if err != nil {
			return nil, err
		}

		methods = append(methods, m)
	}

	return methods, nil
}
