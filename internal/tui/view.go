package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the demo screen.
func (m Model) View() string {
	if m.quitting {
		return quittingStyle.Render("bye") + "\n"
	}

	var rows []string
	for i, b := range m.buttons {
		marker := "  "
		if i == m.selected {
			style := markerDim
			if m.pulse.Position() > 0.5 {
				style = markerStyle
			}
			marker = style.Render("▸ ")
		}

		entry := ""
		if i == m.selected && b.EntryVisible() {
			entry = m.entry.View()
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, marker, b.View(entry))
		rows = append(rows, rowStyle.Render(row))
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("spinfold demo"))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("tab/shift+tab: move • enter: toggle • ↑/↓: step • s: rescale • c: restyle • q: quit"))

	if len(m.events.status) > 0 {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(strings.Join(m.events.status, "\n")))
	}

	return containerPad.Render(sb.String())
}
