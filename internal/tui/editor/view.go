package editor

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Show placeholder when empty
	if len(m.lines) == 1 && len(m.lines[0]) == 0 && m.Placeholder != "" {
		return m.placeholderView()
	}

	tw := m.textWidth()
	bg := m.TextStyle
	lineNumSty := m.LineNumStyle.Background(bg.GetBackground())

	// Build a flat list of visual rows from visible buffer lines.
	type visualRow struct {
		bufRow int    // buffer line index
		subRow int    // 0 = first wrap segment, 1 = second, etc.
		text   string // plain text (expanded tabs) for this segment
	}

	var rows []visualRow

	// Find which buffer line the scroll offset lands in.
	startBuf, startRuneOff := m.visualToBuffer(m.scroll)
	startSubRow := 0
	if startRuneOff > 0 && tw > 0 {
		startSubRow = startRuneOff / tw
	}

	// Generate visual rows starting from the scroll position.
	for bufIdx := startBuf; bufIdx < len(m.lines) && len(rows) < m.height; bufIdx++ {
		segments := wrapPlain(m.expandLine(bufIdx), tw)
		firstSub := 0
		if bufIdx == startBuf {
			firstSub = startSubRow
		}
		for subIdx := firstSub; subIdx < len(segments) && len(rows) < m.height; subIdx++ {
			rows = append(rows, visualRow{
				bufRow: bufIdx,
				subRow: subIdx,
				text:   segments[subIdx],
			})
		}
	}

	// Cursor position in expanded-tab space for the cursor line.
	cursorExpandedCol := -1
	if m.focus && m.row >= 0 && m.row < len(m.lines) {
		cursorExpandedCol = m.expandedCol(m.row, m.col)
	}

	var b strings.Builder

	for vi := 0; vi < m.height; vi++ {
		if vi > 0 {
			b.WriteByte('\n')
		}

		if vi >= len(rows) {
			// End-of-buffer: fill entire row with bg
			b.WriteString(bg.Render(strings.Repeat(" ", m.width)))
			continue
		}

		vr := rows[vi]

		// -- Gutter (line numbers) -------------------------------------------
		if m.ShowLineNumbers {
			if vr.subRow == 0 {
				digits := m.gutterWidth - 1
				num := fmt.Sprintf("%*d ", digits, vr.bufRow+1)
				b.WriteString(lineNumSty.Render(num))
			} else {
				// Continuation row — blank gutter
				b.WriteString(lineNumSty.Render(strings.Repeat(" ", m.gutterWidth)))
			}
		}

		// -- Text content ----------------------------------------------------
		segStart := vr.subRow * tw

		isCursorHere := m.focus && vr.bufRow == m.row &&
			cursorExpandedCol >= segStart && cursorExpandedCol < segStart+tw

		var rendered string
		if isCursorHere {
			rendered = m.renderCursorSegment(vr.text, cursorExpandedCol-segStart)
		} else {
			rendered = bg.Render(vr.text)
		}

		// Truncate to text width and pad
		rw := lipgloss.Width(rendered)
		if rw > tw {
			rendered = ansi.Truncate(rendered, tw, "")
			rw = lipgloss.Width(rendered)
		}
		b.WriteString(rendered)
		if rw < tw {
			b.WriteString(bg.Render(strings.Repeat(" ", tw-rw)))
		}
	}

	return b.String()
}

// renderCursorSegment renders a visual row with the cursor at localCol,
// a rune index into the segment's plain text.
func (m Model) renderCursorSegment(segText string, localCol int) string {
	bg := m.TextStyle
	runes := []rune(segText)

	col := localCol
	if col > len(runes) {
		col = len(runes)
	}

	before := string(runes[:col])
	after := ""
	cursorChar := " "
	if col < len(runes) {
		cursorChar = string(runes[col])
		after = string(runes[col+1:])
	}

	// Render cursor character
	m.cursor.SetChar(cursorChar)
	m.cursor.Style = m.CursorStyle
	m.cursor.TextStyle = bg

	return bg.Render(before) + m.cursor.View() + bg.Render(after)
}

// ---------------------------------------------------------------------------
// Placeholder view (shown while the document is empty)
// ---------------------------------------------------------------------------

func (m Model) placeholderView() string {
	if m.Placeholder == "" {
		return ""
	}
	bg := m.TextStyle
	tw := m.textWidth()

	var b strings.Builder
	// Gutter
	if m.ShowLineNumbers {
		lineNumSty := m.LineNumStyle.Background(bg.GetBackground())
		digits := m.gutterWidth - 1
		num := fmt.Sprintf("%*d ", digits, 1)
		b.WriteString(lineNumSty.Render(num))
	}

	// First line: cursor (if focused) then placeholder text
	if m.focus {
		// Render cursor on first character of placeholder
		phRunes := []rune(m.Placeholder)
		m.cursor.SetChar(string(phRunes[0]))
		m.cursor.Style = m.CursorStyle
		m.cursor.TextStyle = m.PlaceholderSty
		b.WriteString(m.cursor.View())
		rest := m.PlaceholderSty.Render(string(phRunes[1:]))
		rw := lipgloss.Width(m.cursor.View()) + lipgloss.Width(rest)
		b.WriteString(rest)
		if rw < tw {
			b.WriteString(bg.Render(strings.Repeat(" ", tw-rw)))
		}
	} else {
		ph := m.PlaceholderSty.Render(m.Placeholder)
		pw := lipgloss.Width(ph)
		b.WriteString(ph)
		if pw < tw {
			b.WriteString(bg.Render(strings.Repeat(" ", tw-pw)))
		}
	}

	// Remaining rows: empty with bg
	for vi := 1; vi < m.height; vi++ {
		b.WriteByte('\n')
		b.WriteString(bg.Render(strings.Repeat(" ", m.width)))
	}

	return b.String()
}
