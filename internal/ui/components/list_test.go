package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListNewList(t *testing.T) {
	list := NewList(10)
	assert.Equal(t, 10, list.PageSize)
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
	assert.Nil(t, list.Items)
}

func TestListSetItemsKeepsCursorInRange(t *testing.T) {
	list := NewList(5)
	list.SetItems([]string{"a", "b", "c"})
	list.Cursor = 2

	list.SetItems([]string{"a", "b", "c", "d"})
	assert.Equal(t, 2, list.Cursor)

	list.SetItems([]string{"a"})
	assert.Equal(t, 0, list.Cursor)

	list.SetItems(nil)
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
}

func TestListDownScrollsAndWraps(t *testing.T) {
	list := NewList(3)
	list.SetItems([]string{"a", "b", "c", "d", "e"})

	list.Down()
	list.Down()
	assert.Equal(t, 2, list.Cursor)
	assert.Equal(t, 0, list.Offset)

	// past the page - should scroll
	list.Down()
	assert.Equal(t, 3, list.Cursor)
	assert.Equal(t, 1, list.Offset)

	list.Down()
	assert.Equal(t, 4, list.Cursor)
	assert.Equal(t, 2, list.Offset)

	// past the end - wraps to top
	list.Down()
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
}

func TestListUpWrapsToLast(t *testing.T) {
	list := NewList(3)
	list.SetItems([]string{"a", "b", "c", "d", "e"})

	list.Up()
	assert.Equal(t, 4, list.Cursor)
	assert.Equal(t, 2, list.Offset)

	list.Up()
	list.Up()
	assert.Equal(t, 2, list.Cursor)
	assert.Equal(t, 2, list.Offset)

	list.Up()
	assert.Equal(t, 1, list.Cursor)
	assert.Equal(t, 1, list.Offset)
}

func TestListDownNTimesReturnsToStart(t *testing.T) {
	for n := 1; n <= 6; n++ {
		list := NewList(4)
		items := make([]string, n)
		list.SetItems(items)
		list.Select(n / 2)
		start := list.Cursor

		for i := 0; i < n; i++ {
			list.Down()
		}
		assert.Equal(t, start, list.Cursor, "n=%d", n)
	}
}

func TestListEmptyMovementIsNoop(t *testing.T) {
	list := NewList(3)

	list.Up()
	assert.Equal(t, 0, list.Cursor)
	list.Down()
	assert.Equal(t, 0, list.Cursor)
	assert.Nil(t, list.Visible())
}

func TestListSelectClamps(t *testing.T) {
	list := NewList(2)
	list.SetItems([]string{"a", "b", "c", "d"})

	list.Select(10)
	assert.Equal(t, 3, list.Cursor)
	assert.Equal(t, 2, list.Offset)

	list.Select(-4)
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
}

func TestListVisible(t *testing.T) {
	list := NewList(2)
	list.SetItems([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b"}, list.Visible())

	list.Select(2)
	assert.Equal(t, []string{"b", "c"}, list.Visible())
	assert.Equal(t, 2, list.RelToAbs(1))
	assert.True(t, list.IsSelected(2))
	assert.Equal(t, 2, list.Selected())
}

func TestListSetPageSizeKeepsCursorVisible(t *testing.T) {
	list := NewList(10)
	list.SetItems([]string{"a", "b", "c", "d", "e"})
	list.Select(4)

	list.SetPageSize(2)
	assert.Equal(t, 3, list.Offset)

	list.SetPageSize(0)
	assert.Equal(t, 1, list.PageSize)
	assert.Equal(t, 4, list.Offset)
}
