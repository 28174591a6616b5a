package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Key Maps ---

// listKeys are live while no flow is running.
type listKeys struct {
	Quit         key.Binding
	Add          key.Binding
	EditLine     key.Binding
	EditSelected key.Binding
	Up           key.Binding
	Down         key.Binding
	Copy         key.Binding
	Reload       key.Binding
	Help         key.Binding
}

// fieldKeys drive every text-entry step.
type fieldKeys struct {
	Commit       key.Binding
	Cancel       key.Binding
	CopyExisting key.Binding
	Backspace    key.Binding
	Clear        key.Binding
}

type keyMap struct {
	list  listKeys
	field fieldKeys
}

func newKeyMap(vimKeys bool) keyMap {
	up := key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Up"))
	down := key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Down"))
	if vimKeys {
		up = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "Up"))
		down = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "Down"))
	}

	return keyMap{
		list: listKeys{
			Quit:         key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "Quit")),
			Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Add")),
			EditLine:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit #")),
			EditSelected: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Edit")),
			Up:           up,
			Down:         down,
			Copy:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "Copy")),
			Reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Reload")),
			Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Help")),
		},
		field: fieldKeys{
			Commit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Next")),
			Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel")),
			CopyExisting: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "Copy current")),
			Backspace:    key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "Delete")),
			Clear:        key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "Clear")),
		},
	}
}

func (k listKeys) hints() []key.Binding {
	return []key.Binding{k.Add, k.EditLine, k.EditSelected, k.Up, k.Down, k.Copy, k.Reload, k.Help, k.Quit}
}

// --- Key Helpers ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

// isForceQuit is honored in every state so the terminal can always be restored.
func isForceQuit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlC
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}
