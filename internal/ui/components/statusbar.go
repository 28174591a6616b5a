package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	hintLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ba0bf"))
	hintKeyStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16161d")).
			Background(lipgloss.Color("#888ba4")).
			Bold(true).
			Padding(0, 1)
	hintCellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(0, 1).
			MarginRight(1)
)

// StatusBar lays hints out as bordered cells, breaking onto a new row when
// the next cell would overflow width. Empty hints are skipped.
func StatusBar(hints []string, width int) string {
	var cells []string
	for _, h := range hints {
		if h != "" {
			cells = append(cells, hintCellStyle.Render(h))
		}
	}
	if len(cells) == 0 {
		return ""
	}

	rows := hintRows(cells, width)
	bar := lipgloss.NewStyle().PaddingLeft(2)
	if width <= 0 {
		return bar.Render(rows[0])
	}
	return bar.Width(width).Align(lipgloss.Center).Render(strings.Join(rows, "\n"))
}

// Hint renders "desc [key]" with the key drawn as a keycap.
func Hint(keyText, desc string) string {
	return hintLabelStyle.Render(desc+" ") + hintKeyStyle.Render(keyText)
}

// BindingHint renders a binding's help text. Disabled bindings yield "".
func BindingHint(b key.Binding) string {
	if !b.Enabled() {
		return ""
	}
	return Hint(b.Help().Key, b.Help().Desc)
}

// hintRows packs cells greedily into rows no wider than width. A
// non-positive width keeps everything on one row.
func hintRows(cells []string, width int) []string {
	var (
		rows []string
		row  []string
		used int
	)
	for _, cell := range cells {
		w := lipgloss.Width(cell)
		if width > 0 && used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, cell)
		used += w
	}
	return append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
}
