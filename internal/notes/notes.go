package notes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOutOfRange is returned when an index or line number does not address a note.
var ErrOutOfRange = errors.New("note index out of range")

// Note is a single title/body pair.
type Note struct {
	Title string
	Body  string
}

// Collection is the in-memory, ordered mirror of the note file.
type Collection struct {
	items []Note
}

// NewCollection wraps the given notes. The slice is copied.
func NewCollection(items []Note) *Collection {
	c := &Collection{items: make([]Note, len(items))}
	copy(c.items, items)
	return c
}

// Len returns the number of notes.
func (c *Collection) Len() int {
	return len(c.items)
}

// Get returns the note at index.
func (c *Collection) Get(index int) (Note, error) {
	if index < 0 || index >= len(c.items) {
		return Note{}, fmt.Errorf("get note %d of %d: %w", index, len(c.items), ErrOutOfRange)
	}
	return c.items[index], nil
}

// Push appends a note. Callers persist it first.
func (c *Collection) Push(n Note) {
	c.items = append(c.items, n)
}

// Set replaces the note at index. Callers persist it first.
func (c *Collection) Set(index int, n Note) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("set note %d of %d: %w", index, len(c.items), ErrOutOfRange)
	}
	c.items[index] = n
	return nil
}

// All returns a copy of every note in order.
func (c *Collection) All() []Note {
	out := make([]Note, len(c.items))
	copy(out, c.items)
	return out
}

// Replace swaps the whole contents, used after a reload from disk.
func (c *Collection) Replace(items []Note) {
	c.items = make([]Note, len(items))
	copy(c.items, items)
}

// IndexForLine converts a 1-based display line number into a 0-based index.
func IndexForLine(line, length int) (int, error) {
	if line < 1 || line > length {
		return 0, fmt.Errorf("line %d (have %d notes): %w", line, length, ErrOutOfRange)
	}
	return line - 1, nil
}

// ParseLine parses user input as a line number and converts it to an index.
func ParseLine(text string, length int) (int, error) {
	line, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("parse line %q: %w", text, err)
	}
	return IndexForLine(line, length)
}

// FormatRow renders a note the way list views show it.
func FormatRow(index int, n Note) string {
	return fmt.Sprintf("%d: \"%s\" - \"%s\"", index+1, n.Title, n.Body)
}
