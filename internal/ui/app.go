package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/nebula-notes/internal/config"
	"github.com/gravitrone/nebula-notes/internal/notes"
	"github.com/gravitrone/nebula-notes/internal/store"
	"github.com/gravitrone/nebula-notes/internal/ui/components"
)

const (
	defaultPageSize = 10
	// listChrome is the rows taken by everything around the list rows.
	listChrome = 12
)

// --- Messages ---

type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model: the note list plus at most one add/edit flow.
type App struct {
	store     *store.Store
	notes     *notes.Collection
	list      *components.List
	keys      keyMap
	logger    *slog.Logger
	clipboard func(string) error

	flow     *noteFlow
	width    int
	height   int
	err      string
	helpOpen bool
	toast    *appToast
}

// NewApp creates the root application model over notes already loaded from st.
func NewApp(st *store.Store, items []notes.Note, cfg *config.Config, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	vimKeys := true
	if cfg != nil {
		vimKeys = cfg.VimKeys
	}
	a := App{
		store:     st,
		notes:     notes.NewCollection(items),
		list:      components.NewList(defaultPageSize),
		keys:      newKeyMap(vimKeys),
		logger:    logger,
		clipboard: clipboard.WriteAll,
	}
	a.refreshList()
	return a
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetPageSize(a.pageSize())
		return a, nil
	case clearToastMsg:
		a.toast = nil
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isForceQuit(msg) {
		return a, tea.Quit
	}
	a.err = ""

	if a.flow != nil {
		cmd := a.handleFlowKey(msg)
		return a, cmd
	}

	k := a.keys.list
	if a.helpOpen {
		if isBack(msg) || key.Matches(msg, k.Help, k.Quit) {
			a.helpOpen = false
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, k.Quit):
		return a, tea.Quit
	case key.Matches(msg, k.Add):
		a.startFlow(newAddFlow())
	case key.Matches(msg, k.EditLine):
		a.startFlow(newEditByNumberFlow())
	case key.Matches(msg, k.EditSelected):
		if a.notes.Len() > 0 {
			a.startFlow(newEditFlow(a.list.Selected()))
		}
	case key.Matches(msg, k.Up):
		a.list.Up()
	case key.Matches(msg, k.Down):
		a.list.Down()
	case key.Matches(msg, k.Copy):
		return a, a.copySelected()
	case key.Matches(msg, k.Reload):
		return a, a.reload()
	case key.Matches(msg, k.Help):
		a.helpOpen = true
	}
	return a, nil
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(), a.width)

	content := a.renderList()
	if a.helpOpen {
		content = a.renderHelp()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)

	feedback := ""
	if a.err != "" {
		feedback = "\n\n" + centerBlockUniform(components.ErrorBox("Error", a.err, a.width), a.width)
	} else if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	view := fmt.Sprintf("%s\n%s\n\n%s%s", banner, content, hints, feedback)
	if a.flow == nil {
		return view
	}
	dialog := a.renderDialog()
	if a.width <= 0 || a.height <= 0 {
		return view + "\n\n" + dialog
	}
	return components.OverlayModal(view, dialog, a.width, a.height)
}

func (a App) pageSize() int {
	if a.height <= 0 {
		return defaultPageSize
	}
	return max(a.height-bannerHeight()-listChrome, 3)
}

func (a *App) refreshList() {
	items := a.notes.All()
	rows := make([]string, 0, len(items))
	for i, n := range items {
		rows = append(rows, notes.FormatRow(i, n))
	}
	a.list.SetItems(rows)
}

func (a App) renderList() string {
	title := fmt.Sprintf("Notes (%d)", a.notes.Len())
	if a.notes.Len() == 0 {
		return components.TitledBox(title, MutedStyle.Render("No notes yet. Press a to add one."), a.width)
	}

	rowWidth := components.BoxContentWidth(a.width) - 2
	visible := a.list.Visible()
	lines := make([]string, 0, len(visible))
	for i, row := range visible {
		row = components.ClampTextWidth(row, rowWidth)
		if a.list.IsSelected(a.list.RelToAbs(i)) {
			lines = append(lines, SelectedStyle.Render("> "+row))
			continue
		}
		lines = append(lines, NormalStyle.Render("  "+row))
	}
	return components.TitledBox(title, strings.Join(lines, "\n"), a.width)
}

func (a App) statusHints() []string {
	if a.flow != nil {
		f := a.keys.field
		hints := []string{components.BindingHint(f.Commit), components.BindingHint(f.Cancel)}
		if a.flow.editing() && a.flow.step != stepSelectLine {
			hints = append(hints, components.BindingHint(f.CopyExisting))
		}
		return append(hints, components.BindingHint(f.Backspace), components.BindingHint(f.Clear))
	}
	bindings := a.keys.list.hints()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, components.BindingHint(b))
	}
	return hints
}

func (a App) renderHelp() string {
	lines := []string{MutedStyle.Render("esc to close"), ""}
	for _, b := range a.keys.list.hints() {
		help := b.Help()
		lines = append(lines, fmt.Sprintf("  %-8s %s", help.Key, help.Desc))
	}
	lines = append(lines, "", HeaderStyle.Render("While editing"))
	f := a.keys.field
	for _, b := range []key.Binding{f.Commit, f.Cancel, f.CopyExisting, f.Backspace, f.Clear} {
		help := b.Help()
		lines = append(lines, fmt.Sprintf("  %-8s %s", help.Key, help.Desc))
	}
	return components.Indent(components.TitledBox("Help", strings.Join(lines, "\n"), a.width), 1)
}

// copySelected puts the highlighted note on the system clipboard.
func (a *App) copySelected() tea.Cmd {
	index := a.list.Selected()
	n, err := a.notes.Get(index)
	if err != nil {
		return a.setToast("warning", "Nothing to copy")
	}
	if err := a.clipboard(n.Title + "\n" + n.Body); err != nil {
		a.logger.Warn("clipboard write failed", "err", err)
		return a.setToast("error", "Clipboard unavailable: "+err.Error())
	}
	return a.setToast("success", fmt.Sprintf("Copied note %d", index+1))
}

// reload replaces the collection with what is on disk.
func (a *App) reload() tea.Cmd {
	items, err := a.store.Load()
	if err != nil {
		a.logger.Error("reload failed", "err", err)
		a.err = err.Error()
		return nil
	}
	a.notes.Replace(items)
	a.refreshList()
	return a.setToast("info", fmt.Sprintf("Reloaded %d notes", len(items)))
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	title := "Info"
	switch a.toast.level {
	case "success":
		title = "Success"
	case "warning":
		title = "Warning"
	case "error":
		return components.ErrorBox("Error", a.toast.text, a.width)
	}
	return components.TitledBox(title, a.toast.text, a.width)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
