// Package editor implements the text area of the lacuna UI: a
// soft-wrapping viewport over a session's gap buffer with a blinking
// cursor, an optional line number gutter, and mouse positioning.
//
// The component never touches the buffer storage directly. Every edit
// and cursor move goes through the session, and the line index used for
// layout is rebuilt from the session afterwards. That keeps the buffer
// the single source of truth for both content and cursor.
package editor

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/xonecas/lacuna/internal/session"
)

type Model struct {
	// Public configuration — set before first Update/View.
	ShowLineNumbers bool
	TabWidth        int    // Tab stop width for rendering (0 = 4)
	Placeholder     string // Shown when the document is empty

	// Styles — set by parent.
	TextStyle      lipgloss.Style // Document text and background fill
	CursorStyle    lipgloss.Style // Cursor block
	LineNumStyle   lipgloss.Style // Line number gutter
	PlaceholderSty lipgloss.Style // Placeholder text

	// Internal state
	sess  *session.Session
	lines [][]rune // Line index over the session text, one entry per line
	row   int      // Cursor row (0-indexed into lines)
	col   int      // Cursor column (0-indexed into line runes)

	scroll int // First visible visual row

	width  int // Viewport width (cells)
	height int // Viewport height (rows)

	focus     bool
	cursor    cursor.Model
	stickyCol int // Preferred expanded column for vertical moves (-1 = unset)

	// Cached computed values
	gutterWidth int // Width of line number gutter (0 if disabled)
}

// New creates an editor over sess. A nil session renders as an empty
// document until SetSession is called.
func New(sess *session.Session) Model {
	c := cursor.New()
	c.SetMode(cursor.CursorBlink)
	m := Model{
		TabWidth:  4,
		sess:      sess,
		lines:     [][]rune{{}},
		stickyCol: -1,
		cursor:    c,
	}
	m.Sync()
	return m
}

// ---------------------------------------------------------------------------
// Public methods called by parent
// ---------------------------------------------------------------------------

func (m *Model) SetWidth(w int)  { m.width = w; m.clampScrollBounds() }
func (m *Model) SetHeight(h int) { m.height = h; m.clampScrollBounds() }

func (m *Model) Focus() {
	m.focus = true
	m.cursor.Focus()
}

func (m *Model) Blur() {
	m.focus = false
	m.cursor.Blur()
}

func (m Model) Focused() bool { return m.focus }

// SetSession swaps the document under the editor, e.g. after open-file
// or new-file. Scroll and sticky column reset with it.
func (m *Model) SetSession(sess *session.Session) {
	m.sess = sess
	m.scroll = 0
	m.stickyCol = -1
	m.Sync()
}

func (m *Model) Session() *session.Session { return m.sess }

// Sync rebuilds the line index and cursor position from the session.
// The parent calls this after moving the cursor behind the editor's
// back, e.g. when restoring a remembered position.
func (m *Model) Sync() {
	if m.sess == nil {
		m.lines = [][]rune{{}}
		m.row, m.col = 0, 0
		m.scroll = 0
		return
	}
	m.lines = splitLines(m.sess.Text())
	m.syncCursor()
}

// Position returns the cursor's buffer row and column, 0-indexed.
func (m Model) Position() (row, col int) { return m.row, m.col }

// ScrollBy moves the viewport by delta visual rows without moving the
// cursor.
func (m *Model) ScrollBy(delta int) {
	m.scroll += delta
	m.clampScrollBounds()
}

// Blink returns the initial cursor blink message. Call from Init().
func Blink() tea.Msg { return cursor.Blink() }

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

// splitLines builds the line index for a document. An empty document
// still yields one empty line so the cursor always has a row.
func splitLines(s string) [][]rune {
	raw := strings.Split(s, "\n")
	lines := make([][]rune, len(raw))
	for i, l := range raw {
		lines[i] = []rune(l)
	}
	return lines
}

// refresh rebuilds the line index after an edit changed the text.
func (m *Model) refresh() {
	m.lines = splitLines(m.sess.Text())
	m.stickyCol = -1
	m.syncCursor()
}

// syncCursor re-derives row/col from the session cursor and keeps it on
// screen. The sticky column is left alone so vertical runs survive.
func (m *Model) syncCursor() {
	m.row, m.col = m.offsetToRowCol(m.sess.Cursor())
	m.ensureCursorVisible()
}

// offsetToRowCol maps a buffer offset to a line index and rune column.
// An offset equal to a line's length sits at that line's end, before
// the newline.
func (m *Model) offsetToRowCol(offset int) (row, col int) {
	for i, line := range m.lines {
		if offset <= len(line) {
			return i, offset
		}
		offset -= len(line) + 1
	}
	last := len(m.lines) - 1
	return last, len(m.lines[last])
}

// rowColToOffset is the inverse of offsetToRowCol.
func (m *Model) rowColToOffset(row, col int) int {
	offset := 0
	for i := 0; i < row && i < len(m.lines); i++ {
		offset += len(m.lines[i]) + 1
	}
	return offset + col
}

func (m *Model) currentLine() []rune { return m.lines[m.row] }

func (m *Model) tabWidth() int {
	if m.TabWidth < 1 {
		return 4
	}
	return m.TabWidth
}

// expandTabs replaces tabs with spaces, aligned to width-sized stops.
func expandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
		} else {
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

func (m *Model) expandLine(row int) string {
	return expandTabs(string(m.lines[row]), m.tabWidth())
}

// expandedLen returns the rune length of a line after tab expansion
// without building the expanded string.
func (m *Model) expandedLen(line []rune) int {
	tw := m.tabWidth()
	col := 0
	for _, r := range line {
		if r == '\t' {
			col += tw - col%tw
		} else {
			col++
		}
	}
	return col
}

// expandedCol returns the column of (row, col) in expanded-tab space.
func (m *Model) expandedCol(row, col int) int {
	if row < 0 || row >= len(m.lines) {
		return 0
	}
	line := m.lines[row]
	if col > len(line) {
		col = len(line)
	}
	return m.expandedLen(line[:col])
}

// expandedColToBufferCol maps a column in expanded-tab space back to a
// rune index in the buffer line. Columns inside a tab's span map to the
// tab itself; columns past the end clamp to the line length.
func (m *Model) expandedColToBufferCol(row, expCol int) int {
	if row < 0 || row >= len(m.lines) {
		return 0
	}
	tw := m.tabWidth()
	line := m.lines[row]
	ec := 0
	for i, r := range line {
		next := ec + 1
		if r == '\t' {
			next = ec + tw - ec%tw
		}
		if expCol < next {
			return i
		}
		ec = next
	}
	return len(line)
}

// textWidth returns the width available for text content and refreshes
// the cached gutter width.
func (m *Model) textWidth() int {
	m.gutterWidth = 0
	if m.ShowLineNumbers {
		digits := len(fmt.Sprintf("%d", len(m.lines)))
		if digits < 2 {
			digits = 2
		}
		m.gutterWidth = digits + 1 // digits + 1 space
	}
	w := m.width - m.gutterWidth
	if w < 1 {
		w = 1
	}
	return w
}
