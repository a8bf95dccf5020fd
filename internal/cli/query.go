package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// queryCommand creates the query command for inspecting a PC-tree without
// mutating it.
func (c *CLI) queryCommand() *cobra.Command {
	var n int
	var in string
	var showOrders, showUniqueID, showRestrictions bool
	var validOrder string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Inspect a PC-tree: order count, canonical id, restrictions",
		Example: `  pctree query --in tree.txt --orders --unique-id
  pctree query --in tree.txt --valid-order 0,1,2,3,4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(in, n)
			if err != nil {
				return err
			}

			printKeyValue("Tree", t.String())
			printKeyValue("Leaves", fmt.Sprintf("%d", t.NumLeaves()))
			printKeyValue("Trivial", fmt.Sprintf("%v", t.IsTrivial()))

			if showOrders {
				printKeyValue("Orders", t.PossibleOrders().String())
			}
			if showUniqueID {
				id := t.UniqueID(func(a, b int) int { return a - b })
				printKeyValue("UniqueID", id)
			}
			if showRestrictions {
				for _, r := range t.GetRestrictions() {
					strs := make([]string, len(r))
					for i, v := range r {
						strs[i] = fmt.Sprintf("%d", v)
					}
					printDetail("%s", strings.Join(strs, ","))
				}
			}
			if validOrder != "" {
				order, err := parseIndices(validOrder)
				if err != nil {
					return fmt.Errorf("invalid --valid-order: %w", err)
				}
				printKeyValue("ValidOrder", fmt.Sprintf("%v", t.IsValidOrder(order)))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "leaves of a fresh trivial tree (ignored if --in is set)")
	cmd.Flags().StringVar(&in, "in", "", "input tree file, or - for stdin")
	cmd.Flags().BoolVar(&showOrders, "orders", false, "print the count of admissible cyclic orders")
	cmd.Flags().BoolVar(&showUniqueID, "unique-id", false, "print the canonical fingerprint string")
	cmd.Flags().BoolVar(&showRestrictions, "restrictions", false, "print a generating set of restrictions")
	cmd.Flags().StringVar(&validOrder, "valid-order", "", "comma-separated leaf order to validate")

	return cmd
}
