package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionGetOutOfRange(t *testing.T) {
	c := NewCollection([]Note{{Title: "A", Body: "B"}})

	n, err := c.Get(0)
	require.NoError(t, err)
	assert.Equal(t, Note{Title: "A", Body: "B"}, n)

	_, err = c.Get(1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = c.Get(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestCollectionPushAndSet(t *testing.T) {
	c := NewCollection(nil)
	c.Push(Note{Title: "one"})
	c.Push(Note{Title: "two"})
	require.Equal(t, 2, c.Len())

	require.NoError(t, c.Set(1, Note{Title: "2", Body: "b"}))
	assert.Equal(t, []Note{{Title: "one"}, {Title: "2", Body: "b"}}, c.All())

	assert.ErrorIs(t, c.Set(2, Note{}), ErrOutOfRange)
}

func TestCollectionCopiesInput(t *testing.T) {
	src := []Note{{Title: "A"}}
	c := NewCollection(src)
	src[0].Title = "changed"

	n, err := c.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "A", n.Title)

	all := c.All()
	all[0].Title = "mutated"
	n, _ = c.Get(0)
	assert.Equal(t, "A", n.Title)
}

func TestCollectionReplace(t *testing.T) {
	c := NewCollection([]Note{{Title: "A"}})
	c.Replace([]Note{{Title: "X"}, {Title: "Y"}})
	assert.Equal(t, 2, c.Len())
}

func TestIndexForLine(t *testing.T) {
	idx, err := IndexForLine(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = IndexForLine(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = IndexForLine(0, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = IndexForLine(4, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = IndexForLine(1, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParseLine(t *testing.T) {
	idx, err := ParseLine(" 2 ", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = ParseLine("two", 2)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrOutOfRange)

	_, err = ParseLine("", 2)
	assert.Error(t, err)

	_, err = ParseLine("5", 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFormatRow(t *testing.T) {
	assert.Equal(t, `1: "Buy milk" - "2%"`, FormatRow(0, Note{Title: "Buy milk", Body: "2%"}))
	assert.Equal(t, `3: "" - ""`, FormatRow(2, Note{}))
}
