package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routenet/dataset"
)

func newDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the built-in route networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := dataset.All()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, n := range all {
				kind := "undirected"
				if n.Directed {
					kind = "directed"
				}
				fmt.Fprintf(out, "%-14s %3d airports %3d routes  %-10s  %s\n",
					n.Name, len(n.Vertices), len(n.Routes), kind, n.Description)
			}

			return nil
		},
	}
}
