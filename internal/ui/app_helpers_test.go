package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/nebula-notes/internal/config"
	"github.com/gravitrone/nebula-notes/internal/notes"
	"github.com/gravitrone/nebula-notes/internal/store"
)

// testApp builds an App over a temp-dir store seeded with items.
func testApp(t *testing.T, items ...notes.Note) (App, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "note.txt"), nil)
	for _, n := range items {
		require.NoError(t, st.Append(n))
	}
	loaded, err := st.Load()
	require.NoError(t, err)

	app := NewApp(st, loaded, &config.Config{VimKeys: true}, nil)
	app.clipboard = func(string) error { return nil }
	return app, st
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msgs to the app one at a time. Returned commands are dropped so
// toast ticks never fire.
func press(app App, msgs ...tea.Msg) App {
	for _, msg := range msgs {
		model, _ := app.Update(msg)
		app = model.(App)
	}
	return app
}

// typeText sends s one keystroke per rune, spaces as KeySpace.
func typeText(app App, s string) App {
	for _, r := range s {
		if r == ' ' {
			app = press(app, tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		app = press(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return app
}

func fileSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.Size()
}

func truncateFile(path string) error {
	return os.Truncate(path, 0)
}

func TestCenterBlockUniformPadsEveryLineEqually(t *testing.T) {
	out := centerBlockUniform("hi\nworld", 15)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "     hi", lines[0])
	assert.Equal(t, "     world", lines[1])
}

func TestCenterBlockUniformLeavesWideBlocksUnchanged(t *testing.T) {
	in := "0123456789"
	assert.Equal(t, in, centerBlockUniform(in, 5))
	assert.Equal(t, in, centerBlockUniform(in, 0))
	assert.Equal(t, "\n    x", centerBlockUniform("\nx", 9))
}
