package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7f57b4")).
			Padding(1, 2).
			Width(60)

	dialogHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	dialogFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#436b77"))

	dialogMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9ba0bf"))

	dialogErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e06c75")).
				Bold(true)
)

// InputField describes the single text field shown by InputDialog.
type InputField struct {
	Title   string
	Value   string
	Limit   int    // byte limit, 0 hides the counter
	Current string // existing value offered for copying
	Hint    string
	Error   string
}

// InputDialog renders a text input prompt.
func InputDialog(f InputField) string {
	inner := dialogStyle.GetWidth() - dialogStyle.GetHorizontalFrameSize()

	header := dialogHeaderStyle.Render(f.Title)
	if f.Limit > 0 {
		counter := dialogMutedStyle.Render(fmt.Sprintf("%d/%d", len(f.Value), f.Limit))
		gap := inner - lipgloss.Width(header) - lipgloss.Width(counter)
		if gap > 0 {
			header += lipgloss.NewStyle().Width(gap).Render("") + counter
		}
	}

	value := SanitizeOneLine(f.Value)
	// keep the tail visible while typing long values
	if w := inner - 3; w > 0 && lipgloss.Width(value) > w {
		runes := []rune(value)
		for lipgloss.Width(string(runes)) > w-1 {
			runes = runes[1:]
		}
		value = "…" + string(runes)
	}
	body := header + "\n\n" + dialogFieldStyle.Render("> "+value+"█")

	if f.Current != "" {
		body += "\n" + dialogMutedStyle.Render("current: "+ClampTextWidth(f.Current, inner-9))
	}
	if f.Error != "" {
		body += "\n\n" + dialogErrorStyle.Render(f.Error)
	}
	hint := f.Hint
	if hint == "" {
		hint = "enter: submit | esc: cancel"
	}
	body += "\n\n" + dialogMutedStyle.Render(hint)

	return dialogStyle.Render(body)
}
