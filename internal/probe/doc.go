// Package probe implements the terminal emulator detection cascade.
//
// A Detector walks an ordered list of stages. Each stage is a plain function
// that either yields an Emulator or declines; the first stage that yields
// wins. The stage list is fixed at construction time from the target platform
// and the configured method filters:
//
//	detector := probe.NewDetector(&probe.Config{
//	    Logger:       slog.Default(),
//	    QueryTimeout: 2 * time.Second,
//	})
//	term, err := detector.Detect(ctx)
//
// Stages run in this order, each only on the platforms it applies to:
//  1. Windows (console API; the only stage on Windows)
//  2. TERMINAL_EMULATOR environment variable
//  3. Terminal.app (macOS)
//  4. xdg-terminal-exec
//  5. x-terminal-emulator (Linux)
//  6. GNOME settings
//  7. KDE settings
//  8. hardcoded desktop environment, modern, traditional and extended lists
//
// Helper queries (xdg-terminal-exec, gsettings, kreadconfig) run under a
// short timeout. Any failure, including expiry, is a decline and never an
// error of the cascade.
package probe
