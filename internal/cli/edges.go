package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/zhengming-dev/schemeline/pkg/relate"
	"github.com/zhengming-dev/schemeline/pkg/scheme"
)

// edgesCommand creates the edges command for inspecting the inferred
// relationship graph without rendering anything.
func (c *CLI) edgesCommand() *cobra.Command {
	var (
		kind  string
		about string
	)

	cmd := &cobra.Command{
		Use:   "edges <records.json>",
		Short: "Inspect the inferred relationship graph",
		Long: `Edges loads a records file, runs relationship inference, and prints the
resulting edges as a table. Inference always runs over the full record
list in true chronological order; use --kind or --about to narrow the
printed rows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes, err := scheme.LoadFile(args[0])
			if err != nil {
				return err
			}

			sorted := scheme.SortChronological(schemes)
			edges := relate.Infer(sorted)

			names := make(map[string]string, len(sorted))
			for i := range sorted {
				names[sorted[i].ID] = sorted[i].Name
			}

			var rows [][]string
			for _, e := range edges {
				if kind != "" && e.Kind != kind {
					continue
				}
				if about != "" && e.From != about && e.To != about {
					continue
				}
				rows = append(rows, []string{
					e.Kind,
					fmt.Sprintf("%s (%s)", names[e.From], e.From),
					fmt.Sprintf("%s (%s)", names[e.To], e.To),
					e.Label,
				})
			}

			if len(rows) == 0 {
				printInfo("No matching relationships")
				return nil
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("Kind", "Derived", "Origin", "Label").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return StyleTitle
					}
					if col == 0 {
						return StyleHighlight
					}
					return lipgloss.NewStyle()
				})
			fmt.Println(t)

			printDetail("%d edges (%d shown)", len(edges), len(rows))
			if relate.HasCycle(edges) {
				printWarning("graph contains a cycle (duplicate dates?)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only show edges of this kind (feature|author|similar)")
	cmd.Flags().StringVar(&about, "about", "", "only show edges touching this scheme id")

	return cmd
}
