package main

import (
	"fmt"
	"slices"

	"github.com/aretw0/riveting/internal/presentation/graph"
	"github.com/aretw0/riveting/internal/search"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the search screen's state diagram",
	Long:  `Outputs a Mermaid diagram (stateDiagram-v2) of the domain kinds the search screen moves through.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var overlay *graph.Overlay
		if current, _ := cmd.Flags().GetString("current"); current != "" {
			kind := search.Kind(current)
			if !slices.Contains(search.Kinds, kind) {
				return fmt.Errorf("unknown kind %q, want one of %v", current, search.Kinds)
			}
			overlay = &graph.Overlay{Current: kind}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(search.KindLoading, search.Transitions, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("current", "", "Highlight this kind (loading, error, loaded, alert)")
}
