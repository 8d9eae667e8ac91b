package editor

// ---------------------------------------------------------------------------
// Visual layout
//
// Long lines soft-wrap into fixed-width segments of textWidth runes in
// expanded-tab space. A line whose expanded length is an exact multiple
// of the text width gets a trailing empty segment, so the cursor at the
// end of such a line has a row to sit on. All mappings below share that
// convention.
// ---------------------------------------------------------------------------

// wrapPlain splits an expanded (tab-free) line into width-sized rune
// chunks. Always returns at least one segment.
func wrapPlain(s string, width int) []string {
	runes := []rune(s)
	if width <= 0 || len(runes) < width {
		return []string{s}
	}
	segs := make([]string, 0, len(runes)/width+1)
	for start := 0; start <= len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		segs = append(segs, string(runes[start:end]))
	}
	return segs
}

// lineHeight returns the number of visual rows a line of n expanded
// runes occupies at the given text width.
func lineHeight(n, tw int) int {
	if tw <= 0 {
		return 1
	}
	return n/tw + 1
}

// totalVisualRows counts the visual rows of the whole document.
func (m *Model) totalVisualRows() int {
	tw := m.textWidth()
	total := 0
	for _, line := range m.lines {
		total += lineHeight(m.expandedLen(line), tw)
	}
	return total
}

// visualToBuffer maps a visual row index to the buffer line containing
// it and the expanded rune offset where that row's segment starts.
// Rows past the end of the document land on the last line's last
// segment.
func (m *Model) visualToBuffer(visRow int) (bufRow, runeOff int) {
	tw := m.textWidth()
	for i, line := range m.lines {
		h := lineHeight(m.expandedLen(line), tw)
		if visRow < h {
			return i, visRow * tw
		}
		visRow -= h
	}
	last := len(m.lines) - 1
	return last, (lineHeight(m.expandedLen(m.lines[last]), tw) - 1) * tw
}

// cursorVisualRow returns the visual row the cursor sits on.
func (m *Model) cursorVisualRow() int {
	tw := m.textWidth()
	vis := 0
	for i := 0; i < m.row && i < len(m.lines); i++ {
		vis += lineHeight(m.expandedLen(m.lines[i]), tw)
	}
	if tw <= 0 {
		return vis
	}
	return vis + m.expandedCol(m.row, m.col)/tw
}

// clampScrollBounds keeps the scroll offset inside the document.
func (m *Model) clampScrollBounds() {
	if m.height <= 0 {
		return
	}
	maxScroll := m.totalVisualRows() - m.height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// ensureCursorVisible scrolls the minimum amount that brings the
// cursor's visual row on screen.
func (m *Model) ensureCursorVisible() {
	if m.height <= 0 {
		return
	}
	cv := m.cursorVisualRow()
	if cv < m.scroll {
		m.scroll = cv
	}
	if cv >= m.scroll+m.height {
		m.scroll = cv - m.height + 1
	}
	m.clampScrollBounds()
}

// screenToOffset converts component-relative screen coordinates to a
// buffer offset. Coordinates in the gutter snap to column zero and
// coordinates past line ends clamp to the line length.
func (m *Model) screenToOffset(x, y int) int {
	visRow := m.scroll + y
	if visRow < 0 {
		visRow = 0
	}
	bufRow, runeOff := m.visualToBuffer(visRow)

	col := x - m.gutterWidth
	if col < 0 {
		col = 0
	}
	// runeOff is in expanded-tab space; convert back to a buffer col.
	bufCol := m.expandedColToBufferCol(bufRow, runeOff+col)
	return m.rowColToOffset(bufRow, bufCol)
}
