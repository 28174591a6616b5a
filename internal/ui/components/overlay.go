package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dimStyle greys out the background behind a modal. Existing colors are
// stripped first since faint SGR does not combine reliably with them.
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

func maxLineWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// compositeRow places modalLine over bgLine starting at column startX.
func compositeRow(bgLine, modalLine string, startX, modalWidth int) string {
	var b strings.Builder

	plain := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(plain)

	if startX > 0 {
		left := ansi.Truncate(plain, startX, "")
		b.WriteString(dimStyle.Render(left))
		if w := ansi.StringWidth(left); w < startX {
			b.WriteString(strings.Repeat(" ", startX-w))
		}
	}

	b.WriteString(modalLine)

	if rightX := startX + modalWidth; bgWidth > rightX {
		b.WriteString(dimStyle.Render(ansi.Cut(plain, rightX, bgWidth)))
	}
	return b.String()
}

// OverlayModal centers modal on top of a dimmed background of the given size.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")

	modalWidth := maxLineWidth(modalLines)
	modalHeight := len(modalLines)
	startX := max((width-modalWidth)/2, 0)
	startY := max((height-modalHeight)/2, 0)

	rows := max(height, len(bgLines), startY+modalHeight)
	out := make([]string, 0, rows)
	for y := 0; y < rows; y++ {
		bg := ""
		if y < len(bgLines) {
			bg = bgLines[y]
		}
		if i := y - startY; i >= 0 && i < modalHeight {
			line := modalLines[i]
			if pad := modalWidth - ansi.StringWidth(line); pad > 0 {
				line += strings.Repeat(" ", pad)
			}
			out = append(out, compositeRow(bg, line, startX, modalWidth))
			continue
		}
		if bg == "" {
			out = append(out, "")
			continue
		}
		out = append(out, dimStyle.Render(ansi.Strip(bg)))
	}
	return strings.Join(out, "\n")
}
