package components

// List is a scrollable list whose cursor wraps at both ends.
type List struct {
	Items    []string
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	return &List{PageSize: pageSize}
}

// SetItems replaces items, keeping the cursor clamped into range.
func (l *List) SetItems(items []string) {
	l.Items = items
	l.Select(l.Cursor)
}

// Select moves the cursor to index, clamped into range.
func (l *List) Select(index int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.Offset = 0
		return
	}
	l.Cursor = min(max(index, 0), n-1)
	l.follow()
}

// SetPageSize changes how many rows are visible.
func (l *List) SetPageSize(size int) {
	l.PageSize = max(size, 1)
	l.follow()
}

// Down moves the cursor down, wrapping to the first item.
func (l *List) Down() {
	n := len(l.Items)
	if n == 0 {
		return
	}
	l.Cursor = (l.Cursor + 1) % n
	l.follow()
}

// Up moves the cursor up, wrapping to the last item.
func (l *List) Up() {
	n := len(l.Items)
	if n == 0 {
		return
	}
	l.Cursor = (l.Cursor - 1 + n) % n
	l.follow()
}

// follow scrolls the page so the cursor is visible.
func (l *List) follow() {
	if l.PageSize <= 0 {
		l.Offset = 0
		return
	}
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
	if maxOffset := max(len(l.Items)-l.PageSize, 0); l.Offset > maxOffset {
		l.Offset = maxOffset
	}
}

// Visible returns the currently visible items.
func (l *List) Visible() []string {
	if len(l.Items) == 0 {
		return nil
	}
	if l.PageSize <= 0 {
		return l.Items
	}
	end := min(l.Offset+l.PageSize, len(l.Items))
	return l.Items[l.Offset:end]
}

// Selected returns the index of the selected item.
func (l *List) Selected() int {
	return l.Cursor
}

// IsSelected returns true if the given absolute index is the cursor.
func (l *List) IsSelected(absIdx int) bool {
	return absIdx == l.Cursor
}

// RelToAbs converts a relative (visible) index to absolute.
func (l *List) RelToAbs(relIdx int) int {
	return l.Offset + relIdx
}
