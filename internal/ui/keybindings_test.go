package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestIsForceQuit(t *testing.T) {
	assert.True(t, isForceQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.False(t, isForceQuit(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}))
	assert.False(t, isForceQuit(tea.KeyMsg{Type: tea.KeyEsc}))
}

func TestIsBack(t *testing.T) {
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isBack(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsKey(t *testing.T) {
	assert.True(t, isKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, "s"))
	assert.True(t, isKey(tea.KeyMsg{Type: tea.KeyBackspace}, "backspace"))
	assert.True(t, isKey(tea.KeyMsg{Type: tea.KeyLeft}, "up", "left"))
	assert.False(t, isKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}, "a"))
}

func TestListKeysMatch(t *testing.T) {
	k := newKeyMap(true).list

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, k.Quit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, k.Quit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, k.Add))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}, k.EditLine))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k.EditSelected))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, k.Copy))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, k.Reload))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, k.Help))
}

func TestVimKeysToggleNavigation(t *testing.T) {
	vim := newKeyMap(true).list
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, vim.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, vim.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, vim.Down))

	plain := newKeyMap(false).list
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, plain.Down))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, plain.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyUp}, plain.Up))
	assert.Equal(t, "↑", plain.Up.Help().Key)
}

func TestFieldKeysMatch(t *testing.T) {
	k := newKeyMap(true).field

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, k.Commit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, k.Cancel))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, k.CopyExisting))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyBackspace}, k.Backspace))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlU}, k.Clear))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, k.Cancel))
}
