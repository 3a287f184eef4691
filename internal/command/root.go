package command

import (
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"github.com/spf13/cobra"

	termemu "github.com/wagiedev/terminal-emulator-go"
	"github.com/wagiedev/terminal-emulator-go/internal/config"
)

// Options holds CLI-level configuration.
type Options struct {
	// Env supplies flag defaults. If nil, config.DefaultEnv is used.
	Env *config.Env

	// System replaces the host for detection. If nil, the real host is used.
	System termemu.System

	// Platform overrides the GOOS the cascade is built for.
	Platform string

	// Start launches the process built by the run command.
	// If nil, (*exec.Cmd).Start is used.
	Start func(*exec.Cmd) error
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	disable []string
	only    []string
	timeout time.Duration
	envVar  string
	verbose bool
}

type app struct {
	opts  Options
	env   *config.Env
	flags globalFlags
}

// NewRootCmd wires the cobra root command. Running it without a subcommand
// behaves like detect.
func NewRootCmd(opts Options) *cobra.Command {
	env := opts.Env
	if env == nil {
		env = config.DefaultEnv()
	}

	if opts.Start == nil {
		opts.Start = (*exec.Cmd).Start
	}

	a := &app{opts: opts, env: env}

	detectCmd := a.newDetectCommand()

	root := &cobra.Command{
		Use:   "termemu",
		Short: "Detect the terminal emulator of this host",
		Long: "termemu determines which terminal emulator to open on this host and " +
			"builds the command line that runs a program inside it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return detectCmd.RunE(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&a.flags.disable, "disable", env.Disable, "Detection methods to skip (e.g. gnome-settings,kde-settings)")
	pf.StringSliceVar(&a.flags.only, "only", env.Only, "Restrict detection to these methods")
	pf.DurationVar(&a.flags.timeout, "timeout", env.QueryTimeout, "Timeout for each helper query")
	pf.StringVar(&a.flags.envVar, "env-var", env.EnvVar, "Environment variable naming the preferred terminal")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Log every detection stage to stderr")

	// The root shares --format with detect.
	root.Flags().AddFlagSet(detectCmd.Flags())

	root.AddCommand(detectCmd)
	root.AddCommand(a.newSurveyCommand())
	root.AddCommand(a.newInvocationCommand())
	root.AddCommand(a.newRunCommand())
	root.AddCommand(a.newMethodsCommand())
	root.AddCommand(a.newMCPCommand())
	root.AddCommand(newVersionCommand())

	return root
}

// detectOptions turns flags and settings into library options.
func (a *app) detectOptions(stderr io.Writer) ([]termemu.Option, error) {
	env := config.Env{
		Only:         a.flags.only,
		Disable:      a.flags.disable,
		QueryTimeout: a.flags.timeout,
		EnvVar:       a.flags.envVar,
		LogLevel:     a.env.LogLevel,
	}

	var options termemu.Options
	if err := env.Apply(&options); err != nil {
		return nil, err
	}

	level, err := env.Level()
	if err != nil {
		return nil, err
	}

	if a.flags.verbose {
		level = slog.LevelDebug
	}

	options.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	options.System = a.opts.System
	options.Platform = a.opts.Platform

	return []termemu.Option{termemu.WithOptions(&options)}, nil
}

func (a *app) detector(cmd *cobra.Command) (termemu.Detector, error) {
	opts, err := a.detectOptions(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return termemu.NewDetector(opts...), nil
}

// nativeAPIError reports a terminal that cannot be spawned as a process.
func nativeAPIError(term termemu.Emulator) error {
	return fmt.Errorf("%s uses the platform console API: run the command directly in a new console", term.Name())
}
