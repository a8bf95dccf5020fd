package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// renderCommand creates the render command for producing an SVG of a
// PC-tree via Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	var n int
	var in, output, labels string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a PC-tree as SVG",
		Example: `  pctree render --n 4 --labels A,B,C,D -o tree.svg
  pctree render --in tree.txt -o tree.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(in, n)
			if err != nil {
				return err
			}

			var labelList []string
			if labels != "" {
				labelList = strings.Split(labels, ",")
			}

			svg, err := t.RenderSVG(labelList)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if err := writeFile(svg, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			printSuccess("PC-tree rendered")
			printKeyValue("Leaves", fmt.Sprintf("%d", t.NumLeaves()))
			if output != "" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "leaves of a fresh trivial tree (ignored if --in is set)")
	cmd.Flags().StringVar(&in, "in", "", "input tree file, or - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&labels, "labels", "", "comma-separated leaf labels (defaults to leaf indices)")

	return cmd
}
