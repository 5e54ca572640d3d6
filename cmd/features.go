package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"collsuite/internal/catalog"
	"collsuite/internal/feature"
	"collsuite/internal/render"
)

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List known features and the bundled containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			out := cmd.OutOrStdout()

			render.PrintTable(out, render.FeatureTable(c.Taxonomy()))
			fmt.Fprintln(out)
			render.PrintTable(out, render.ContainerTable(c.Kinds(), func(kind string) []feature.Feature {
				entry, _ := c.Lookup(kind)
				return entry.Features
			}))
			return nil
		},
	}
}
