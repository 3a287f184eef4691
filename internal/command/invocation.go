package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	termemu "github.com/wagiedev/terminal-emulator-go"
)

func (a *app) newInvocationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "invocation -- <command...>",
		Short: "Print the argv that runs a command in the detected terminal",
		Long:  "Print the argv that runs a command in the detected terminal, one token per line.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.invocation(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, token := range spec.Argv() {
				if _, err := fmt.Fprintln(out, token); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (a *app) newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run -- <command...>",
		Short: "Start a command in the detected terminal",
		Long: "Start a command in the detected terminal and exit once it is running. " +
			"The terminal is not supervised.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := a.invocation(cmd, args)
			if err != nil {
				return err
			}

			// The terminal outlives termemu.
			proc := spec.Command(context.WithoutCancel(cmd.Context()))
			if err := a.opts.Start(proc); err != nil {
				return fmt.Errorf("start %s: %w", spec.Path, err)
			}

			if proc.Process != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "started %s (pid %d)\n", spec.Path, proc.Process.Pid)

				return proc.Process.Release()
			}

			return nil
		},
	}
}

func (a *app) invocation(cmd *cobra.Command, command []string) (termemu.ProcessSpec, error) {
	d, err := a.detector(cmd)
	if err != nil {
		return termemu.ProcessSpec{}, err
	}

	term, err := d.Detect(cmd.Context())
	if err != nil {
		return termemu.ProcessSpec{}, err
	}

	spec, ok := termemu.BuildInvocation(term, command...)
	if !ok {
		return termemu.ProcessSpec{}, nativeAPIError(term)
	}

	return spec, nil
}
