package emulator

import "slices"

// Hardcoded candidate lists, in priority order. Each name is resolved on PATH.
var (
	desktopEnvTerminals = []string{
		"kgx", // GNOME Console
		"gnome-terminal",
		"konsole",
		"xfce4-terminal",
		"mate-terminal",
		"lxterminal",
		"qterminal",
		"ptyxis",
		"deepin-terminal",
		"io.elementary.terminal",
	}

	modernTerminals = []string{
		"kitty",
		"alacritty",
		"wezterm",
		"ghostty",
		"foot",
		"rio",
		"contour",
		"hyper",
		"tabby",
		"blackbox",
		"warp",
		"extraterm",
	}

	traditionalTerminals = []string{
		"xterm",
		"rxvt",
		"urxvt",
		"aterm",
		"eterm",
		"pterm",
		"mrxvt",
		"st",
		"mlterm",
		"fbterm",
		"kmscon",
	}

	extendedTerminals = []string{
		"terminator",
		"tilix",
		"guake",
		"yakuake",
		"tilda",
		"terminology",
		"cool-retro-term",
		"sakura",
		"roxterm",
		"edex-ui",
	}
)

// Candidates returns a copy of the hardcoded list walked by method, or nil if
// the method does not use a hardcoded list.
func Candidates(method DetectionMethod) []string {
	switch method {
	case MethodHardcodedDesktopEnv:
		return slices.Clone(desktopEnvTerminals)
	case MethodHardcodedModern:
		return slices.Clone(modernTerminals)
	case MethodHardcodedTraditional:
		return slices.Clone(traditionalTerminals)
	case MethodHardcodedExtended:
		return slices.Clone(extendedTerminals)
	default:
		return nil
	}
}

// FallbackTerminal is the first Traditional candidate, used when every
// enabled stage declines.
func FallbackTerminal() string {
	return traditionalTerminals[0]
}
