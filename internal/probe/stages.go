package probe

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/ini.v1"

	"github.com/wagiedev/terminal-emulator-go/internal/emulator"
	"github.com/wagiedev/terminal-emulator-go/internal/errors"
)

// probeFunc runs one stage. It reports false to decline.
type probeFunc func(ctx context.Context, p *prober) (emulator.Emulator, bool)

// stage binds a probe to the method it reports and the platforms it runs on.
type stage struct {
	method    emulator.DetectionMethod
	platforms []string
	probe     probeFunc
}

// stages is the full cascade in priority order.
var stages = []stage{
	{method: emulator.MethodWindows, platforms: windowsOnly, probe: probeWindows},
	{method: emulator.MethodEnvironmentVariable, platforms: nonWindows, probe: probeEnvironmentVariable},
	{method: emulator.MethodTerminalApp, platforms: darwinOnly, probe: probeTerminalApp},
	{method: emulator.MethodXdgTerminalExec, platforms: unixPlatforms, probe: probeXdgTerminalExec},
	{method: emulator.MethodXTerminalEmulator, platforms: linuxOnly, probe: probeXTerminalEmulator},
	{method: emulator.MethodGnomeSettings, platforms: unixPlatforms, probe: probeGnomeSettings},
	{method: emulator.MethodKdeSettings, platforms: unixPlatforms, probe: probeKdeSettings},
	{method: emulator.MethodHardcodedDesktopEnv, platforms: unixPlatforms, probe: probeHardcoded(emulator.MethodHardcodedDesktopEnv)},
	{method: emulator.MethodHardcodedModern, platforms: unixPlatforms, probe: probeHardcoded(emulator.MethodHardcodedModern)},
	{method: emulator.MethodHardcodedTraditional, platforms: unixPlatforms, probe: probeHardcoded(emulator.MethodHardcodedTraditional)},
	{method: emulator.MethodHardcodedExtended, platforms: unixPlatforms, probe: probeHardcoded(emulator.MethodHardcodedExtended)},
}

const (
	windowsConsoleName = "Windows Console"
	terminalAppName    = "Terminal.app"

	xdgTerminalExec    = "xdg-terminal-exec"
	xTerminalEmulator  = "x-terminal-emulator"
	gsettings          = "gsettings"
	gnomeTerminalKey   = "org.gnome.desktop.default-applications.terminal"
	kdeGlobals         = "kdeglobals"
	kdeGeneralGroup    = "General"
	kdeTerminalKey     = "TerminalApplication"
	xdgConfigHomeEnv   = "XDG_CONFIG_HOME"
	defaultConfigDir   = ".config"
	desktopEntrySuffix = ".desktop"
)

// terminalAppBundles are the locations of Terminal.app across macOS releases.
var terminalAppBundles = []string{
	"/System/Applications/Utilities/Terminal.app",
	"/Applications/Utilities/Terminal.app",
}

// kreadconfigHelpers are tried in order; Plasma 6 ships kreadconfig6.
var kreadconfigHelpers = []string{"kreadconfig6", "kreadconfig5"}

// prober carries the state shared by stages during one detection call.
type prober struct {
	sys     System
	log     *slog.Logger
	envVar  string
	timeout time.Duration
}

// lookPath resolves an executable, treating failure as a decline.
func (p *prober) lookPath(name string) (string, bool) {
	path, err := p.sys.LookPath(name)
	if err != nil {
		p.log.Debug("Executable not resolvable", "name", name, "error", err)

		return "", false
	}

	return path, true
}

// query runs a helper in query mode under the configured timeout and returns
// the first non-empty line of its output. answered is false when the helper
// could not be run, exited non-zero, or timed out.
func (p *prober) query(ctx context.Context, path string, args ...string) (line string, answered bool) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.sys.Output(ctx, path, args...)
	if err != nil {
		p.log.Debug("Helper query declined",
			"error", &errors.QueryError{Helper: filepath.Base(path), Err: err},
		)

		return "", false
	}

	return firstLine(out), true
}

// resolveConfigured turns a configured terminal command such as
// "tilix --quake" into an emulator name and resolved path.
func (p *prober) resolveConfigured(value string) (name, path string, ok bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "", "", false
	}

	path, ok = p.lookPath(fields[0])
	if !ok {
		return "", "", false
	}

	return filepath.Base(fields[0]), path, true
}

func probeWindows(_ context.Context, _ *prober) (emulator.Emulator, bool) {
	return emulator.NativeAPI(windowsConsoleName, emulator.MethodWindows), true
}

func probeEnvironmentVariable(_ context.Context, p *prober) (emulator.Emulator, bool) {
	value, _ := p.sys.LookupEnv(p.envVar)

	value = strings.TrimSpace(value)
	if value == "" {
		p.log.Debug("Environment variable not set", "env_var", p.envVar)

		return emulator.Emulator{}, false
	}

	path, ok := p.lookPath(value)
	if !ok {
		return emulator.Emulator{}, false
	}

	return emulator.New(filepath.Base(value), path, emulator.SyntaxE, emulator.MethodEnvironmentVariable), true
}

func probeTerminalApp(_ context.Context, p *prober) (emulator.Emulator, bool) {
	for _, bundle := range terminalAppBundles {
		info, err := p.sys.Stat(bundle)
		if err == nil && info.IsDir() {
			p.log.Debug("Found Terminal.app bundle", "bundle", bundle)

			return emulator.NativeAPI(terminalAppName, emulator.MethodTerminalApp), true
		}
	}

	return emulator.Emulator{}, false
}

func probeXdgTerminalExec(ctx context.Context, p *prober) (emulator.Emulator, bool) {
	path, ok := p.lookPath(xdgTerminalExec)
	if !ok {
		return emulator.Emulator{}, false
	}

	if !p.supportsPrintID(path) {
		p.log.Debug("xdg-terminal-exec predates --print-id", "path", path)

		return emulator.Emulator{}, false
	}

	id, answered := p.query(ctx, path, "--print-id")
	if !answered || id == "" {
		return emulator.Emulator{}, false
	}

	name := strings.TrimSuffix(id, desktopEntrySuffix)

	return emulator.New(name, path, emulator.SyntaxCommand, emulator.MethodXdgTerminalExec), true
}

// supportsPrintID reports whether the xdg-terminal-exec at path knows
// --print-id. Releases without it take unknown arguments as a command and
// open a terminal, so the helper source is checked before it is run.
func (p *prober) supportsPrintID(path string) bool {
	data, err := p.sys.ReadFile(path)
	if err != nil {
		p.log.Debug("xdg-terminal-exec not readable", "error", err)

		return false
	}

	return bytes.Contains(data, []byte("--print-id"))
}

func probeXTerminalEmulator(_ context.Context, p *prober) (emulator.Emulator, bool) {
	path, ok := p.lookPath(xTerminalEmulator)
	if !ok {
		return emulator.Emulator{}, false
	}

	name := xTerminalEmulator
	if target, err := p.sys.EvalSymlinks(path); err == nil {
		name = filepath.Base(target)
	}

	return emulator.New(name, path, emulator.SyntaxE, emulator.MethodXTerminalEmulator), true
}

func probeGnomeSettings(ctx context.Context, p *prober) (emulator.Emulator, bool) {
	path, ok := p.lookPath(gsettings)
	if !ok {
		return emulator.Emulator{}, false
	}

	value, answered := p.query(ctx, path, "get", gnomeTerminalKey, "exec")
	if !answered {
		return emulator.Emulator{}, false
	}

	name, termPath, ok := p.resolveConfigured(unquoteGVariant(value))
	if !ok {
		return emulator.Emulator{}, false
	}

	return emulator.New(name, termPath, emulator.SyntaxE, emulator.MethodGnomeSettings), true
}

func probeKdeSettings(ctx context.Context, p *prober) (emulator.Emulator, bool) {
	value, answered := p.kdeTerminalFromHelpers(ctx)
	if !answered {
		value = p.kdeTerminalFromFile()
	}

	name, path, ok := p.resolveConfigured(value)
	if !ok {
		return emulator.Emulator{}, false
	}

	return emulator.New(name, path, emulator.SyntaxE, emulator.MethodKdeSettings), true
}

// kdeTerminalFromHelpers asks the first available kreadconfig helper.
func (p *prober) kdeTerminalFromHelpers(ctx context.Context) (string, bool) {
	for _, helper := range kreadconfigHelpers {
		path, ok := p.lookPath(helper)
		if !ok {
			continue
		}

		value, answered := p.query(ctx, path,
			"--file", kdeGlobals,
			"--group", kdeGeneralGroup,
			"--key", kdeTerminalKey,
		)
		if answered {
			return value, true
		}
	}

	return "", false
}

// kdeTerminalFromFile reads kdeglobals directly when no helper answered.
func (p *prober) kdeTerminalFromFile() string {
	configDir, ok := p.sys.LookupEnv(xdgConfigHomeEnv)
	if !ok || configDir == "" {
		home, err := p.sys.UserHomeDir()
		if err != nil {
			return ""
		}

		configDir = filepath.Join(home, defaultConfigDir)
	}

	data, err := p.sys.ReadFile(filepath.Join(configDir, kdeGlobals))
	if err != nil {
		p.log.Debug("kdeglobals not readable", "error", err)

		return ""
	}

	return parseKdeGlobals(data)
}

func probeHardcoded(method emulator.DetectionMethod) probeFunc {
	candidates := emulator.Candidates(method)

	return func(_ context.Context, p *prober) (emulator.Emulator, bool) {
		for _, name := range candidates {
			if path, ok := p.lookPath(name); ok {
				return emulator.New(name, path, emulator.SyntaxE, method), true
			}
		}

		return emulator.Emulator{}, false
	}
}

// firstLine returns the first non-blank line of out, trimmed.
func firstLine(out []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}

	return ""
}

// unquoteGVariant strips the quoting gsettings applies to string values.
func unquoteGVariant(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '\'' || first == '"') && first == last {
			return value[1 : len(value)-1]
		}
	}

	return value
}

// KConfig flag markers such as "[$e]" or "[$i]". The INI reader keeps the
// closing bracket of a key flag but consumes the last one of a group header.
var (
	kconfigKeyFlags   = regexp.MustCompile(`(\[\$[^\[\]]*\])+$`)
	kconfigGroupFlags = regexp.MustCompile(`(\]\[\$[^\[\]]*)+$`)
)

// parseKdeGlobals extracts General/TerminalApplication from kdeglobals.
// Flagged keys and groups match; localized keys such as
// "TerminalApplication[de]" do not. A later entry overrides an earlier one.
func parseKdeGlobals(data []byte) string {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreContinuation:      true,
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, data)
	if err != nil {
		return ""
	}

	value := ""

	for _, section := range cfg.Sections() {
		if kconfigGroupFlags.ReplaceAllString(section.Name(), "") != kdeGeneralGroup {
			continue
		}

		for _, key := range section.Keys() {
			if kconfigKeyFlags.ReplaceAllString(key.Name(), "") == kdeTerminalKey {
				value = strings.TrimSpace(key.Value())
			}
		}
	}

	return value
}
