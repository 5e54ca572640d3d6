package cmd

import (
	"github.com/spf13/cobra"

	"collsuite/internal/render"
)

func newTreeCmd(opts *globalOptions) *cobra.Command {
	var treeOpts render.TreeOptions

	cmd := &cobra.Command{
		Use:   "tree [suite...]",
		Short: "Show the suite tree built from the declarations",
		Long: `Builds the declared suites and prints the resulting tree: one branch per
collection size, one group per tester and one leaf per applicable test.

Example usage:
  collsuite tree                      # All enabled suites
  collsuite tree ArrayList --keys     # One suite, with test keys
  collsuite tree --suites-only        # Hide individual tests
  collsuite tree --depth=2            # Stop below the size branches`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := opts.buildSuites(cmd.Context(), args)
			if err != nil {
				return err
			}
			return render.Tree(cmd.OutOrStdout(), root, treeOpts)
		},
	}

	cmd.Flags().BoolVar(&treeOpts.ShowKeys, "keys", false, "Show test keys")
	cmd.Flags().BoolVar(&treeOpts.SuitesOnly, "suites-only", false, "Hide individual tests")
	cmd.Flags().IntVar(&treeOpts.MaxDepth, "depth", 0, "Maximum suite depth to show (0 shows all)")

	return cmd
}
