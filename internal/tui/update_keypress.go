package tui

import (
	tea "charm.land/bubbletea/v2"
)

// handleKeyPress processes shell-level key events. Returns (model, cmd,
// true) if handled; unhandled keys fall through to the editor.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	handler := m.keyPressHandlers()[msg.Keystroke()]
	if handler == nil {
		return Model{}, nil, false
	}
	return handler(m)
}

func (m *Model) keyPressHandlers() map[string]func(*Model) (Model, tea.Cmd, bool) {
	return map[string]func(*Model) (Model, tea.Cmd, bool){
		"ctrl+q":       (*Model).handleCtrlQ,
		"ctrl+c":       (*Model).handleCtrlQ,
		"ctrl+n":       (*Model).handleCtrlN,
		"ctrl+o":       (*Model).handleCtrlO,
		"ctrl+s":       (*Model).handleCtrlS,
		"ctrl+shift+s": (*Model).handleCtrlShiftS,
		"ctrl+g":       (*Model).handleCtrlG,
		"ctrl+h":       (*Model).handleCtrlH,
		"ctrl+shift+v": (*Model).handleCtrlShiftV,
	}
}

// handleCtrlQ quits, via the confirm modal when the session has unsaved
// edits.
func (m *Model) handleCtrlQ() (Model, tea.Cmd, bool) {
	if sess := m.editor.Session(); sess != nil && sess.Dirty() {
		m.openConfirmModal(pendingQuit)
		return *m, nil, true
	}
	m.touchStore()
	return *m, tea.Quit, true
}

// handleCtrlN starts a fresh scratch session, confirming first when the
// current one has unsaved edits.
func (m *Model) handleCtrlN() (Model, tea.Cmd, bool) {
	if sess := m.editor.Session(); sess != nil && sess.Dirty() {
		m.openConfirmModal(pendingNew)
		return *m, nil, true
	}
	return *m, m.newSession(), true
}

func (m *Model) handleCtrlO() (Model, tea.Cmd, bool) {
	if m.searcher != nil {
		m.openFileModal()
		return *m, nil, true
	}
	return *m, nil, false
}

// handleCtrlS saves in place, or falls back to the save-as prompt when
// the session has no path yet.
func (m *Model) handleCtrlS() (Model, tea.Cmd, bool) {
	sess := m.editor.Session()
	if sess == nil {
		return *m, nil, true
	}
	if sess.Path() == "" {
		m.openSaveAsModal()
		return *m, nil, true
	}
	return *m, m.saveSession(), true
}

func (m *Model) handleCtrlShiftS() (Model, tea.Cmd, bool) {
	if m.editor.Session() == nil {
		return *m, nil, true
	}
	m.openSaveAsModal()
	return *m, nil, true
}

func (m *Model) handleCtrlG() (Model, tea.Cmd, bool) {
	if m.editor.Session() == nil {
		return *m, nil, true
	}
	m.openStatsModal()
	return *m, nil, true
}

func (m *Model) handleCtrlH() (Model, tea.Cmd, bool) {
	m.openKeybindsModal()
	return *m, nil, true
}

func (m *Model) handleCtrlShiftV() (Model, tea.Cmd, bool) {
	return *m, tea.ReadClipboard, true
}
