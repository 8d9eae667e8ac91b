package editor

import "strings"

// ---------------------------------------------------------------------------
// Editing — every op funnels through the session so the gap buffer
// stays the single source of truth. Inserting at the cursor and the
// boundary deletes are where the buffer pays off: line splits and
// joins fall out of inserting or removing a newline rune.
// ---------------------------------------------------------------------------

// InsertText inserts a string at the cursor. Carriage returns are
// dropped so pasted CRLF text stays LF-only inside the buffer.
func (m *Model) InsertText(text string) {
	text = strings.ReplaceAll(text, "\r", "")
	if text == "" {
		return
	}
	if err := m.sess.InsertString(text); err != nil {
		return
	}
	m.refresh()
}

func (m *Model) insertRune(r rune) {
	if err := m.sess.Insert(r); err != nil {
		return
	}
	m.refresh()
}

// deleteBack removes the rune before the cursor. At the start of the
// document there is nothing to remove and the buffer says so; that is
// not a condition worth surfacing.
func (m *Model) deleteBack() {
	if err := m.sess.DeleteBackward(); err != nil {
		return
	}
	m.refresh()
}

func (m *Model) deleteForward() {
	if err := m.sess.DeleteForward(); err != nil {
		return
	}
	m.refresh()
}

// ---------------------------------------------------------------------------
// Cursor motion
// ---------------------------------------------------------------------------

// moveTo clamps offset into the document and repositions the session
// cursor. After clamping the move cannot fail. The sticky column is
// left alone so vertical runs keep their target column.
func (m *Model) moveTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	if n := m.sess.Len(); offset > n {
		offset = n
	}
	if err := m.sess.MoveCursorTo(offset); err != nil {
		return
	}
	m.syncCursor()
}

func (m *Model) moveLeft() {
	m.sess.MoveCursorLeft()
	m.stickyCol = -1
	m.syncCursor()
}

func (m *Model) moveRight() {
	m.sess.MoveCursorRight()
	m.stickyCol = -1
	m.syncCursor()
}

// moveVert moves the cursor delta buffer lines. The first vertical move
// in a run records the cursor's expanded column; later moves aim for it
// so the cursor does not drift left through short lines.
func (m *Model) moveVert(delta int) {
	if m.stickyCol < 0 {
		m.stickyCol = m.expandedCol(m.row, m.col)
	}
	row := m.row + delta
	if row < 0 {
		row = 0
	}
	if row >= len(m.lines) {
		row = len(m.lines) - 1
	}
	col := m.expandedColToBufferCol(row, m.stickyCol)
	m.moveTo(m.rowColToOffset(row, col))
}

func (m *Model) moveLineStart() {
	m.stickyCol = -1
	m.moveTo(m.rowColToOffset(m.row, 0))
}

func (m *Model) moveLineEnd() {
	m.stickyCol = -1
	m.moveTo(m.rowColToOffset(m.row, len(m.currentLine())))
}

func (m *Model) moveDocStart() {
	m.stickyCol = -1
	m.moveTo(0)
}

func (m *Model) moveDocEnd() {
	m.stickyCol = -1
	m.moveTo(m.sess.Len())
}
