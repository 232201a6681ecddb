package main

import (
	"github.com/aretw0/riveting/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the search screen as MCP tools over stdio:
send_action sends an action and returns the view state it produces,
get_view_state returns the current one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		app, err := openApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		return cli.RunMCP(app)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
