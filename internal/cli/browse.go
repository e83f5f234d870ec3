package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zhengming-dev/schemeline/pkg/relate"
	"github.com/zhengming-dev/schemeline/pkg/scheme"
)

// browseCommand creates the browse command: an interactive terminal list
// of schemes with their inferred relationships.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <records.json>",
		Short: "Browse schemes and their relationships interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemes, err := scheme.LoadFile(args[0])
			if err != nil {
				return err
			}
			sorted := scheme.SortChronological(schemes)
			edges := relate.Infer(sorted)

			m := browseModel{schemes: sorted, edges: edges}
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
}

// visibleRows is how many schemes the list pane shows at once.
const visibleRows = 15

type browseModel struct {
	schemes []scheme.Scheme
	edges   []relate.Edge
	cursor  int
	offset  int
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.schemes)-1 {
				m.cursor++
			}
		}
		if m.cursor < m.offset {
			m.offset = m.cursor
		}
		if m.cursor >= m.offset+visibleRows {
			m.offset = m.cursor - visibleRows + 1
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if len(m.schemes) == 0 {
		return StyleDim.Render("no schemes loaded") + "\n"
	}

	var list strings.Builder
	end := min(m.offset+visibleRows, len(m.schemes))
	for i := m.offset; i < end; i++ {
		s := &m.schemes[i]
		year := "????"
		if len(s.Date) >= 4 {
			year = s.Date[:4]
		}
		line := fmt.Sprintf("%s  %s", year, s.Name)
		if s.Deprecated {
			line += StyleDim.Render(" (deprecated)")
		}
		if i == m.cursor {
			line = StyleHighlight.Render("› " + line)
		} else {
			line = "  " + line
		}
		list.WriteString(line + "\n")
	}

	detail := m.detailView(&m.schemes[m.cursor])
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(34).Render(list.String()),
		detail)

	help := StyleDim.Render("↑/↓ move · q quit")
	return StyleTitle.Render("schemeline browser") + "\n\n" + body + "\n" + help + "\n"
}

// detailView renders the selected scheme's record and its edges.
func (m browseModel) detailView(s *scheme.Scheme) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(s.Name) + "\n")
	b.WriteString(StyleDim.Render("id: ") + s.ID + "\n")
	b.WriteString(StyleDim.Render("date: ") + s.Date + "\n")
	b.WriteString(StyleDim.Render("authors: ") + strings.Join(s.Authors, ", ") + "\n")
	if len(s.Maintainers) > 0 {
		b.WriteString(StyleDim.Render("maintainers: ") + strings.Join(s.Maintainers, ", ") + "\n")
	}
	b.WriteString(StyleDim.Render("features: ") + strings.Join(s.Features, ", ") + "\n")
	if s.URL != "" {
		b.WriteString(StyleLink.Render(s.URL) + "\n")
	}

	var derived, origins []string
	for _, e := range m.edges {
		switch {
		case e.From == s.ID:
			origins = append(origins, fmt.Sprintf("%s → %s (%s)", e.Kind, e.To, e.Label))
		case e.To == s.ID:
			derived = append(derived, fmt.Sprintf("%s ← %s (%s)", e.Kind, e.From, e.Label))
		}
	}
	if len(origins) > 0 {
		b.WriteString("\n" + StyleValue.Render("derived from") + "\n")
		for _, line := range origins {
			b.WriteString("  " + line + "\n")
		}
	}
	if len(derived) > 0 {
		b.WriteString("\n" + StyleValue.Render("influenced") + "\n")
		for _, line := range derived {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}
