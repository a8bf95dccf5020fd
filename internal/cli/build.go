package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pctree/pkg/pctree"
)

// buildCommand creates the build command for constructing a trivial PC-tree.
func (c *CLI) buildCommand() *cobra.Command {
	var n int
	var output string
	var ids string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a trivial PC-tree over n leaves",
		Long: `Build a trivial PC-tree: a single P-node root with n leaf children,
representing every cyclic order of the n leaves with no restriction applied.`,
		Example: `  pctree build --n 6
  pctree build --n 6 --ids uuid -o tree.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return fmt.Errorf("--n must be positive")
			}

			var opts []pctree.Option
			switch ids {
			case "", "int":
			case "uuid":
				opts = append(opts, pctree.WithNodeIDFunc(uuid.NewString))
			default:
				return fmt.Errorf("unknown --ids value %q (want int or uuid)", ids)
			}

			t := pctree.NewTrivial(n, opts...)
			if err := writeFile([]byte(t.String()+"\n"), output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			printSuccess("Built trivial PC-tree")
			printKeyValue("Leaves", fmt.Sprintf("%d", t.NumLeaves()))
			printKeyValue("Orders", t.PossibleOrders().String())
			if output != "" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "number of leaves")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&ids, "ids", "int", "node id display: int or uuid")

	return cmd
}
