package command

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	termemu "github.com/wagiedev/terminal-emulator-go"
)

func (a *app) newDetectCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Print the terminal emulator detection selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			d, err := a.detector(cmd)
			if err != nil {
				return err
			}

			term, err := d.Detect(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatText {
				_, err = fmt.Fprintln(out, term)

				return err
			}

			return writeStructured(out, format, term)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json or yaml")

	return cmd
}

func (a *app) newSurveyCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Run every detection stage and report what each one finds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			d, err := a.detector(cmd)
			if err != nil {
				return err
			}

			report, err := d.Survey(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatText {
				return renderReport(out, report)
			}

			return writeStructured(out, format, report)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json or yaml")

	return cmd
}

func renderReport(out io.Writer, report *termemu.Report) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tFOUND\tTERMINAL")

	for _, r := range report.Results {
		found, terminal := "no", "-"
		if r.Found && r.Emulator != nil {
			found, terminal = "yes", r.Emulator.String()
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Method.Token(), found, terminal)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	selected := "none"
	if report.Selected != nil {
		selected = report.Selected.String()
	}

	_, err := fmt.Fprintf(out, "\nplatform: %s\nselected: %s\n", report.Platform, selected)

	return err
}

func (a *app) newMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List detection methods enabled on this platform in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.detector(cmd)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TOKEN\tMETHOD\tCANDIDATES")

			for _, m := range d.Methods() {
				candidates := "-"
				if list := termemu.Candidates(m); len(list) > 0 {
					candidates = strings.Join(list, ",")
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Token(), m, candidates)
			}

			return tw.Flush()
		},
	}
}
