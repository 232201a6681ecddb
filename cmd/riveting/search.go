package main

import (
	"os"

	"github.com/aretw0/riveting/internal/cli"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run the interactive search screen",
	Long: `Starts the search screen in the terminal. Type a name to search,
confirm with y, and use /help to list the other commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		app, err := openApp(ctx, cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		plain, _ := cmd.Flags().GetBool("plain")
		fancy := !plain && cli.IsTerminal(os.Stdout)
		return cli.RunSearch(ctx, app, os.Stdin, os.Stdout, fancy)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("plain", false, "Print raw markdown instead of styled output")
}
