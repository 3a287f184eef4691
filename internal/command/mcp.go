package command

import (
	"fmt"
	"runtime"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	termemu "github.com/wagiedev/terminal-emulator-go"
)

func (a *app) newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve detection as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.detectOptions(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			server := termemu.NewMCPServer(opts...)

			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show termemu version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "termemu version %s\n", termemu.Version)
			_, err := fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

			return err
		},
	}
}
