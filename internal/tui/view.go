package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	content := m.renderContent()
	switch {
	case m.openModal != nil:
		content = m.openModal.View(m.width, m.height)
	case m.saveAsModal != nil:
		content = m.saveAsModal.View(m.width, m.height)
	case m.statsModal != nil:
		content = m.statsModal.View(m.width, m.height)
	case m.keybindsModal != nil:
		content = m.keybindsModal.View(m.width, m.height)
	case m.confirmModal != nil:
		content = m.confirmModal.View(m.width, m.height)
	}
	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// renderContent produces the string content for the view: the editor
// pane padded to full width, then the status area.
func (m Model) renderContent() string {
	if m.width == 0 {
		return ""
	}

	contentH := m.height - statusRows
	var b strings.Builder

	editorLines := strings.Split(m.editor.View(), "\n")
	bgFill := m.styles.BgFill

	for row := 0; row < contentH; row++ {
		renderPaddedLine(&b, editorLines, row, m.width, bgFill)
		b.WriteByte('\n')
	}

	m.renderStatusBar(&b, bgFill)
	return b.String()
}

// renderPaddedLine writes a line from lines[idx] padded/truncated to width,
// or a blank fill if idx is out of range.
func renderPaddedLine(b *strings.Builder, lines []string, idx, width int, bgFill lipgloss.Style) {
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		lw := lipgloss.Width(line)
		if lw > width {
			line = ansi.Truncate(line, width, "")
			lw = lipgloss.Width(line)
		}
		b.WriteString(line)
		if lw < width {
			b.WriteString(bgFill.Render(strings.Repeat(" ", width-lw)))
		}
	} else {
		b.WriteString(bgFill.Render(strings.Repeat(" ", width)))
	}
}
