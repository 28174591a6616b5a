package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gravitrone/nebula-notes/internal/notes"
)

// FieldWidth is the fixed byte width of every record, excluding its newline.
const FieldWidth = 100

// recordSize is one padded field plus its trailing newline.
const recordSize = FieldWidth + 1

// Field selects the title or body record of a note.
type Field int

const (
	FieldTitle Field = iota
	FieldBody
)

var (
	// ErrOutOfRange is returned when an update addresses a note the file does not hold.
	ErrOutOfRange = errors.New("note record out of range")
	// ErrMisaligned is returned when the records at an offset are not fixed-width.
	ErrMisaligned = errors.New("note records are not fixed-width")
)

// Store reads and writes notes as fixed-width records in a flat text file.
type Store struct {
	path   string
	logger *slog.Logger
	// writeAt is swapped in tests to simulate failing disks.
	writeAt func(f *os.File, b []byte, off int64) (int, error)
}

// New returns a store backed by path. A nil logger discards output.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, logger: logger, writeAt: (*os.File).WriteAt}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// recordOffset is the byte offset of a note's field record.
func recordOffset(index int, field Field) int64 {
	return int64(index*2+int(field)) * recordSize
}

// Load reads every complete title/body pair. The file is created empty when absent.
func (s *Store) Load() ([]notes.Note, error) {
	f, err := os.OpenFile(s.path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	defer f.Close()

	items, pending, err := readNotes(f)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	if pending {
		s.logger.Debug("dropping unpaired trailing line", "path", s.path)
	}
	return items, nil
}

// readNotes pairs lines into notes. pending reports an unpaired last line.
func readNotes(r io.Reader) (items []notes.Note, pending bool, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4*recordSize), 1024*1024)

	var title string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if !pending {
			title = line
			pending = true
			continue
		}
		items = append(items, notes.Note{Title: title, Body: line})
		pending = false
	}
	if err := scanner.Err(); err != nil {
		return nil, false, err
	}
	return items, pending, nil
}

// Append writes a note right after the last complete pair. An unpaired
// trailing line is overwritten and a missing final newline is added first,
// so the new note lands where Load will find it. Both records land or
// neither does.
func (s *Store) Append(n notes.Note) error {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("append note: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("append note: %w", err)
	}
	end, needNewline := pairBoundary(data)
	tail := data[end:]
	if len(tail) > 0 {
		s.logger.Warn("overwriting unpaired trailing line", "path", s.path, "bytes", len(tail))
	}

	buf := encodeNote(n)
	if needNewline {
		buf = append([]byte{'\n'}, buf...)
	}
	written, err := s.writeAt(f, buf, end)
	if err == nil && written != len(buf) {
		err = io.ErrShortWrite
	}
	if err == nil {
		err = f.Truncate(end + int64(len(buf)))
	}
	if err != nil {
		if rerr := restoreTail(f, tail, end); rerr != nil {
			return fmt.Errorf("append note: %w (rollback: %v)", err, rerr)
		}
		return fmt.Errorf("append note: %w", err)
	}

	s.logger.Debug("note appended", "path", s.path, "offset", end)
	return nil
}

// pairBoundary returns the byte offset just past the last complete
// title/body pair, counting lines the way Load does. needNewline reports
// that the last pair has no terminating newline.
func pairBoundary(data []byte) (end int64, needNewline bool) {
	lines := 0
	for start := 0; start < len(data); {
		next := len(data)
		if i := bytes.IndexByte(data[start:], '\n'); i >= 0 {
			next = start + i + 1
		}
		lines++
		if lines%2 == 0 {
			end = int64(next)
		}
		start = next
	}
	return end, end > 0 && data[end-1] != '\n'
}

// restoreTail puts the file back to its size and content before a failed append.
func restoreTail(f *os.File, tail []byte, offset int64) error {
	if len(tail) > 0 {
		if _, err := f.WriteAt(tail, offset); err != nil {
			return err
		}
	}
	return f.Truncate(offset + int64(len(tail)))
}

// UpdateAt overwrites the note at index in place.
func (s *Store) UpdateAt(index int, n notes.Note) error {
	if index < 0 {
		return fmt.Errorf("update note %d: %w", index, ErrOutOfRange)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("update note %d: %w", index, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("update note %d: %w", index, err)
	}
	offset := recordOffset(index, FieldTitle)
	if info.Size() < offset+2*recordSize {
		return fmt.Errorf("update note %d: %w", index, ErrOutOfRange)
	}

	for _, field := range []Field{FieldTitle, FieldBody} {
		if err := checkRecord(f, recordOffset(index, field)); err != nil {
			return fmt.Errorf("update note %d: %w", index, err)
		}
	}

	buf := encodeNote(n)
	written, err := s.writeAt(f, buf, offset)
	if err == nil && written != len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("update note %d: %w", index, err)
	}

	s.logger.Debug("note updated", "path", s.path, "index", index)
	return nil
}

// Count returns the number of notes Load would return, without creating the file.
func (s *Store) Count() (int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("count notes: %w", err)
	}
	defer f.Close()

	items, _, err := readNotes(f)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return len(items), nil
}

func checkRecord(r io.ReaderAt, offset int64) error {
	end := make([]byte, 1)
	if _, err := r.ReadAt(end, offset+FieldWidth); err != nil {
		return err
	}
	if end[0] != '\n' {
		return ErrMisaligned
	}
	return nil
}

func encodeNote(n notes.Note) []byte {
	buf := make([]byte, 0, 2*recordSize)
	buf = appendField(buf, n.Title)
	buf = appendField(buf, n.Body)
	return buf
}

// appendField writes value padded to FieldWidth. Longer values are cut at a rune boundary.
func appendField(buf []byte, value string) []byte {
	value = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, value)
	value = Fit(value)
	buf = append(buf, value...)
	for i := len(value); i < FieldWidth; i++ {
		buf = append(buf, ' ')
	}
	return append(buf, '\n')
}

// Fit truncates value to at most FieldWidth bytes without splitting a rune.
func Fit(value string) string {
	if len(value) <= FieldWidth {
		return value
	}
	cut := FieldWidth
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}
