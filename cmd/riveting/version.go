package main

import (
	"fmt"

	"github.com/aretw0/riveting"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of riveting",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "riveting version %s\n", riveting.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
