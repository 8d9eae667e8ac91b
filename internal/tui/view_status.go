package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// renderStatusBar writes the status separator and bar: file name and
// transient notices on the left, cursor position and buffer geometry on
// the right.
func (m Model) renderStatusBar(b *strings.Builder, bgFill lipgloss.Style) {
	b.WriteString(m.styles.Border.Render(strings.Repeat("─", m.width)))
	b.WriteByte('\n')

	sess := m.editor.Session()

	// -- Left segments --
	name := "untitled"
	if sess != nil {
		name = sess.Name()
		if sess.Dirty() {
			name += "*"
		}
	}
	left := m.styles.StatusName.Render(" " + name)
	if m.notice != "" {
		style := m.styles.Notice
		if m.noticeErr {
			style = m.styles.Error
		}
		left += m.styles.StatusText.Render("  ") + style.Render(m.notice)
	}

	// -- Right segments --
	var rightParts []string

	row, col := m.editor.Position()
	rightParts = append(rightParts, m.styles.StatusText.Render(fmt.Sprintf("%d:%d", row+1, col+1)))

	if sess != nil {
		st := sess.Stats()
		rightParts = append(rightParts, m.styles.StatusText.Render(fmt.Sprintf(
			"Cursor: %d | Length: %d | Gap: %d", sess.Cursor(), st.Length, st.GapLength)))
	}

	right := strings.Join(rightParts, m.styles.StatusText.Render("  "))

	// -- Compose: left + gap + right + trailing space --
	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - rightW - 1
	if gap < 0 {
		gap = 0
	}
	b.WriteString(left)
	b.WriteString(bgFill.Render(strings.Repeat(" ", gap)))
	b.WriteString(right)
	b.WriteString(bgFill.Render(" "))
}
