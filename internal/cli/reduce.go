package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// reduceCommand creates the reduce command for applying restrictions to a
// PC-tree in sequence.
func (c *CLI) reduceCommand() *cobra.Command {
	var n int
	var in, output string

	cmd := &cobra.Command{
		Use:   "reduce [restriction...]",
		Short: "Apply consecutivity restrictions to a PC-tree",
		Long: `Apply one or more consecutivity restrictions to a PC-tree, in order.

Each restriction is a comma-separated list of leaf indices that must appear
consecutively in every remaining admissible cyclic order.`,
		Example: `  # Trivial tree over 5 leaves, two restrictions applied in order
  pctree reduce --n 5 0,1,2 3,4

  # Starting from a saved tree
  pctree reduce --in tree.txt 1,2 -o tree.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(in, n)
			if err != nil {
				return err
			}

			for _, arg := range args {
				restriction, err := parseIndices(arg)
				if err != nil {
					return fmt.Errorf("invalid restriction %q: %w", arg, err)
				}
				if !t.MakeConsecutive(restriction) {
					printError("restriction %q is infeasible", arg)
					return fmt.Errorf("restriction %q conflicts with an earlier one", arg)
				}
				printSuccess("applied %q", arg)
			}

			if err := writeFile([]byte(t.String()+"\n"), output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			printKeyValue("Tree", t.String())
			printKeyValue("Orders", t.PossibleOrders().String())
			if output != "" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "leaves of a fresh trivial tree (ignored if --in is set)")
	cmd.Flags().StringVar(&in, "in", "", "input tree file, or - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// parseIndices parses a comma-separated list of non-negative leaf indices.
func parseIndices(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid index %q", p)
		}
		out[i] = v
	}
	return out, nil
}
