package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pctree/pkg/pctree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// nodeRow - one flattened row of the tree, in DFS order
// =============================================================================

type nodeRow struct {
	idx      int
	kind     pctree.Kind
	depth    int
	children int
	leafPos  int
}

// flattenTree walks t in DFS order, recording each node's depth for
// indentation in the browser's table.
func flattenTree(t *pctree.Tree) []nodeRow {
	var rows []nodeRow
	var walk func(idx, depth int)
	walk = func(idx, depth int) {
		kind, children := t.NodeInfo(idx)
		leafPos := -1
		if kind == pctree.Leaf {
			leafPos = t.LeafPosition(idx)
		}
		rows = append(rows, nodeRow{idx: idx, kind: kind, depth: depth, children: len(children), leafPos: leafPos})
		for _, c := range children {
			walk(c, depth+1)
		}
	}
	if root := t.Root(); root >= 0 {
		walk(root, 0)
	}
	return rows
}

// =============================================================================
// NodeBrowserModel - interactive PC-tree node browser
// =============================================================================

// NodeBrowserModel is the bubbletea model for browsing a PC-tree's nodes.
type NodeBrowserModel struct {
	Tree   *pctree.Tree
	Rows   []nodeRow
	Cursor int
	Height int
	Offset int
	Quit   bool
}

// NewNodeBrowserModel creates a browser model over t.
func NewNodeBrowserModel(t *pctree.Tree) NodeBrowserModel {
	return NodeBrowserModel{
		Tree:   t,
		Rows:   flattenTree(t),
		Height: 15,
	}
}

func (m NodeBrowserModel) Init() tea.Cmd {
	return nil
}

func (m NodeBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m NodeBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("PC-tree Browser"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("up/down navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}
		indent := strings.Repeat("  ", r.depth)
		label := fmt.Sprintf("%s%d", indent, r.idx)
		if id := m.Tree.ExternalID(r.idx); id != "" {
			label = fmt.Sprintf("%s%s", indent, id)
		}
		kindStr := r.kind.String()
		leafStr := "—"
		if r.kind == pctree.Leaf {
			leafStr = fmt.Sprintf("%d", r.leafPos)
		}
		rows = append(rows, []string{cursor, label, kindStr, fmt.Sprintf("%d", r.children), leafStr})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Kind", "Children", "Leaf#").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// tuiCommand creates the interactive PC-tree browser command.
func (c *CLI) tuiCommand() *cobra.Command {
	var n int
	var in string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse a PC-tree's nodes interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(in, n)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(NewNodeBrowserModel(t)).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "leaves of a fresh trivial tree (ignored if --in is set)")
	cmd.Flags().StringVar(&in, "in", "", "input tree file, or - for stdin")

	return cmd
}
