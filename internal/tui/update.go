package tui

import (
	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	// -- Paste (clipboard read or bracketed paste) ---------------------------
	case tea.ClipboardMsg:
		m.insertPaste(msg.String())
		return m, nil
	case tea.PasteMsg:
		m.insertPaste(msg.Content)
		return m, nil

	// -- Notice expiry -------------------------------------------------------
	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil
	}

	// Modal-first: an open modal owns keys, mouse, and its debounce
	// ticks until it closes.
	if mdl, cmd, handled := m.updateModals(msg); handled {
		return mdl, cmd
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyPressMsg:
		if mdl, cmd, handled := m.handleKeyPress(msg); handled {
			return mdl, cmd
		}
	}

	// Everything else belongs to the editor: unclaimed keys, cursor
	// blink ticks.
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// insertPaste inserts pasted text into the editor. Pastes that arrive
// while a modal is up are dropped rather than applied behind it.
func (m *Model) insertPaste(text string) {
	if text == "" || m.modalOpen() {
		return
	}
	m.editor.InsertText(text)
}
