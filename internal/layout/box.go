package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box wraps a section's content in a rounded border with the section name
// set into the top edge:
//
//	╭─ cal ──────────╮
//	│ ...            │
//	╰────────────────╯
//
// width is the inner content width (including the one-cell side padding);
// the border adds two more cells.
func Box(title, content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width)

	boxed := style.Render(content)
	lines := strings.Split(boxed, "\n")
	if len(lines) == 0 || title == "" {
		return boxed
	}

	top := lines[0]
	topWidth := lipgloss.Width(top)
	label := " " + title + " "
	labelWidth := lipgloss.Width(label)

	// Leave the edge untouched when the name would not fit.
	rest := topWidth - 3 - labelWidth
	if rest < 1 {
		return boxed
	}

	lines[0] = "╭─" + label + strings.Repeat("─", rest) + "╮"
	return strings.Join(lines, "\n")
}
