package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldAction is what a keystroke did to a text field.
type fieldAction int

const (
	fieldIgnored fieldAction = iota
	fieldEdited
	fieldFull
	fieldCommit
	fieldCancel
	fieldCopy
)

// editField applies msg to buf, never letting it grow past limit bytes.
// Commit, cancel and copy are reported back for the caller to act on.
func editField(keys fieldKeys, buf *string, limit int, msg tea.KeyMsg) fieldAction {
	switch {
	case key.Matches(msg, keys.Commit):
		return fieldCommit
	case key.Matches(msg, keys.Cancel):
		return fieldCancel
	case key.Matches(msg, keys.CopyExisting):
		return fieldCopy
	case key.Matches(msg, keys.Backspace):
		if *buf == "" {
			return fieldIgnored
		}
		*buf = dropLastRune(*buf)
		return fieldEdited
	case key.Matches(msg, keys.Clear):
		*buf = ""
		return fieldEdited
	}

	text := typedText(msg)
	if text == "" {
		return fieldIgnored
	}
	if len(*buf)+len(text) > limit {
		return fieldFull
	}
	*buf += text
	return fieldEdited
}

// typedText returns the printable text a key event carries, if any.
func typedText(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		return strings.Map(func(r rune) rune {
			if !unicode.IsPrint(r) {
				return -1
			}
			return r
		}, string(msg.Runes))
	}
	return ""
}

func dropLastRune(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
