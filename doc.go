// Package termemu determines which terminal emulator to open and builds the
// command line that runs a program inside it.
//
// Detection walks a fixed cascade of stages and the first stage that finds a
// terminal wins:
//
//  1. Windows: the native console API.
//  2. The TERMINAL_EMULATOR environment variable.
//  3. macOS: Terminal.app.
//  4. xdg-terminal-exec.
//  5. The x-terminal-emulator alternatives link (Debian and derivatives).
//  6. The GNOME default terminal setting.
//  7. The KDE default terminal setting.
//  8. Hardcoded lists: the terminal of the current desktop environment,
//     modern terminals, traditional terminals, then an extended list.
//
// Stages that do not apply to the running platform are skipped. When every
// stage declines on Linux or a BSD, detection falls back to "xterm" without
// resolving it, so spawning may still fail.
//
// # Basic Usage
//
//	ctx := context.Background()
//	term, err := termemu.Detect(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spec, ok := termemu.BuildInvocation(term, "htop")
//	if !ok {
//	    // Terminal uses the platform console API; run the command directly.
//	}
//	cmd := spec.Command(ctx)
//	if err := cmd.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Functional options tune detection:
//
//	term, err := termemu.Detect(ctx,
//	    termemu.WithLogger(slog.Default()),
//	    termemu.WithQueryTimeout(time.Second),
//	    termemu.WithoutMethods(termemu.MethodGnomeSettings),
//	)
//
// WithSystem replaces the host (environment, PATH, filesystem and helper
// processes), which makes detection fully deterministic in tests.
//
// # Diagnostics
//
// Survey runs every enabled stage instead of stopping at the first match and
// reports each outcome:
//
//	report, err := termemu.Survey(ctx)
//	for _, r := range report.Results {
//	    fmt.Println(r.Method, r.Found)
//	}
//
// # MCP
//
// NewMCPServer exposes detection to MCP clients as read-only tools:
//
//	server := termemu.NewMCPServer()
//	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
//	    log.Fatal(err)
//	}
package termemu
