package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/lacuna/internal/tui/modal"
)

const (
	maxRecentItems = 10
	maxSearchItems = 50
	searchTimeout  = 2 * time.Second
)

// updateModals gives the open modal, if any, first claim on a message.
func (m *Model) updateModals(msg tea.Msg) (Model, tea.Cmd, bool) {
	if mdl, cmd, handled := m.updateOpenModal(msg); handled {
		return mdl, cmd, true
	}
	if mdl, cmd, handled := m.updateSaveAsModal(msg); handled {
		return mdl, cmd, true
	}
	if mdl, cmd, handled := m.updateStatsModal(msg); handled {
		return mdl, cmd, true
	}
	if mdl, cmd, handled := m.updateKeybindsModal(msg); handled {
		return mdl, cmd, true
	}
	if mdl, cmd, handled := m.updateConfirmModal(msg); handled {
		return mdl, cmd, true
	}
	return *m, nil, false
}

// ---------------------------------------------------------------------------
// Open file
// ---------------------------------------------------------------------------

// openFileModal shows the file picker: recently opened files while the
// query is empty, live search results once the user types.
func (m *Model) openFileModal() {
	searchFn := func(query string) []modal.Item {
		return m.fileItems(query)
	}
	md := modal.New(searchFn, "Open: ", modalColors(m.cfg.UI.Theme))
	m.openModal = &md
	m.editor.Blur()
}

// fileItems merges the store's recent files (empty query only) with the
// searcher's results. Recent entries that no longer exist on disk are
// dropped from the store as they are discovered.
func (m *Model) fileItems(query string) []modal.Item {
	var items []modal.Item
	seen := make(map[string]bool)

	if query == "" {
		for _, p := range m.store.Recent(maxRecentItems) {
			if _, err := os.Stat(p); err != nil {
				m.store.Forget(p)
				continue
			}
			items = append(items, modal.Item{Name: m.displayPath(p), Desc: "recent", Tag: p})
			seen[p] = true
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()
	results, err := m.searcher.Search(ctx, query, maxSearchItems)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("file search failed")
		return items
	}
	for _, rel := range results {
		abs := filepath.Join(m.searcher.Root(), rel)
		if seen[abs] {
			continue
		}
		items = append(items, modal.Item{Name: rel, Tag: abs})
	}
	return items
}

// displayPath shortens a path to be root-relative when it lives under
// the search root.
func (m *Model) displayPath(p string) string {
	rel, err := filepath.Rel(m.searcher.Root(), p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}

func (m *Model) updateOpenModal(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.openModal == nil {
		return *m, nil, false
	}
	action, cmd := m.openModal.HandleMsg(msg)
	switch a := action.(type) {
	case modal.ActionClose:
		m.openModal = nil
		m.editor.Focus()
		return *m, nil, true
	case modal.ActionSelect:
		m.openModal = nil
		m.editor.Focus()
		return *m, m.openPath(a.Item.Tag), true
	}
	if cmd != nil {
		return *m, cmd, true
	}
	switch msg.(type) {
	case tea.KeyPressMsg, tea.MouseMsg:
		return *m, nil, true
	}
	return *m, nil, false
}

// ---------------------------------------------------------------------------
// Save as
// ---------------------------------------------------------------------------

func (m *Model) openSaveAsModal() {
	p := modal.NewPrompt("Save file", "Path: ", m.editor.Session().Path(), modalColors(m.cfg.UI.Theme))
	m.saveAsModal = &p
	m.editor.Blur()
}

func (m *Model) updateSaveAsModal(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.saveAsModal == nil {
		return *m, nil, false
	}
	action, cmd := m.saveAsModal.HandleMsg(msg)
	switch a := action.(type) {
	case modal.ActionClose:
		m.saveAsModal = nil
		m.pending = pendingNone
		m.editor.Focus()
		return *m, nil, true
	case modal.ActionSubmit:
		m.saveAsModal = nil
		m.editor.Focus()
		saveCmd := m.saveSessionAs(a.Value)
		if m.editor.Session().Dirty() {
			// The save failed; whatever was waiting on it is off.
			m.pending = pendingNone
			return *m, saveCmd, true
		}
		if next := m.continuePending(); next != nil {
			return *m, tea.Batch(saveCmd, next), true
		}
		return *m, saveCmd, true
	}
	if cmd != nil {
		return *m, cmd, true
	}
	switch msg.(type) {
	case tea.KeyPressMsg, tea.MouseMsg:
		return *m, nil, true
	}
	return *m, nil, false
}

// ---------------------------------------------------------------------------
// Buffer stats
// ---------------------------------------------------------------------------

// openStatsModal snapshots the gap buffer geometry into a read-only view.
func (m *Model) openStatsModal() {
	sess := m.editor.Session()
	st := sess.Stats()
	content := fmt.Sprintf(
		"Start region length:  %d\n"+
			"Gap length:           %d\n"+
			"End region length:    %d\n"+
			"Total capacity:       %d\n"+
			"\n"+
			"Gap start:            %d\n"+
			"Gap end:              %d\n"+
			"\n"+
			"Cursor position:      %d\n"+
			"Document length:      %d\n",
		st.GapStart,
		st.GapLength,
		st.Capacity-st.GapEnd,
		st.Capacity,
		st.GapStart,
		st.GapEnd,
		sess.Cursor(),
		st.Length,
	)
	md := modal.NewInfo("Buffer statistics", content, modalColors(m.cfg.UI.Theme))
	m.statsModal = &md
	m.editor.Blur()
}

func (m *Model) updateStatsModal(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.statsModal == nil {
		return *m, nil, false
	}
	action, cmd := m.statsModal.HandleMsg(msg)
	switch action.(type) {
	case modal.ActionClose:
		m.statsModal = nil
		m.editor.Focus()
		return *m, nil, true
	}
	if cmd != nil {
		return *m, cmd, true
	}
	switch msg.(type) {
	case tea.KeyPressMsg, tea.MouseMsg:
		return *m, nil, true
	}
	return *m, nil, false
}

// ---------------------------------------------------------------------------
// Keybinds
// ---------------------------------------------------------------------------

func (m *Model) openKeybindsModal() {
	items := []modal.Item{
		{Name: "ctrl+o", Desc: "open file"},
		{Name: "ctrl+s", Desc: "save"},
		{Name: "ctrl+shift+s", Desc: "save as"},
		{Name: "ctrl+n", Desc: "new file"},
		{Name: "ctrl+g", Desc: "buffer statistics"},
		{Name: "ctrl+h", Desc: "keybinds"},
		{Name: "ctrl+q", Desc: "quit"},
		{Name: "esc", Desc: "close modal"},
		{Name: "enter", Desc: "insert newline"},
		{Name: "tab", Desc: "insert tab"},
		{Name: "backspace", Desc: "delete before cursor"},
		{Name: "delete", Desc: "delete after cursor"},
		{Name: "up/down/left/right", Desc: "move cursor"},
		{Name: "home/end/ctrl+a/ctrl+e", Desc: "line start/end"},
		{Name: "ctrl+home/ctrl+end", Desc: "document start/end"},
		{Name: "pgup/pgdown", Desc: "page up/down"},
		{Name: "ctrl+shift+v", Desc: "paste"},
		{Name: "click", Desc: "place cursor"},
		{Name: "wheel", Desc: "scroll"},
	}
	searchFn := func(query string) []modal.Item {
		if query == "" {
			return items
		}
		q := strings.ToLower(query)
		var filtered []modal.Item
		for _, item := range items {
			name := strings.ToLower(item.Name)
			desc := strings.ToLower(item.Desc)
			if strings.Contains(name, q) || strings.Contains(desc, q) {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	md := modal.New(searchFn, "Keys: ", modalColors(m.cfg.UI.Theme))
	m.keybindsModal = &md
	m.editor.Blur()
}

func (m *Model) updateKeybindsModal(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.keybindsModal == nil {
		return *m, nil, false
	}
	action, cmd := m.keybindsModal.HandleMsg(msg)
	switch action.(type) {
	case modal.ActionClose:
		m.keybindsModal = nil
		m.editor.Focus()
		return *m, nil, true
	case modal.ActionSelect:
		return *m, nil, true
	}
	if cmd != nil {
		return *m, cmd, true
	}
	switch msg.(type) {
	case tea.KeyPressMsg, tea.MouseMsg:
		return *m, nil, true
	}
	return *m, nil, false
}

// ---------------------------------------------------------------------------
// Unsaved changes confirmation
// ---------------------------------------------------------------------------

// openConfirmModal asks what to do with unsaved edits before action runs.
func (m *Model) openConfirmModal(action pendingAction) {
	m.pending = action
	items := []modal.Item{
		{Name: "Save", Desc: "write the file, then continue", Tag: "save"},
		{Name: "Discard", Desc: "continue without saving", Tag: "discard"},
		{Name: "Cancel", Desc: "keep editing", Tag: "cancel"},
	}
	md := modal.NewStatic("Unsaved changes", items, modalColors(m.cfg.UI.Theme))
	m.confirmModal = &md
	m.editor.Blur()
}

func (m *Model) updateConfirmModal(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.confirmModal == nil {
		return *m, nil, false
	}
	action, cmd := m.confirmModal.HandleMsg(msg)
	switch a := action.(type) {
	case modal.ActionClose:
		m.confirmModal = nil
		m.pending = pendingNone
		m.editor.Focus()
		return *m, nil, true
	case modal.ActionSelect:
		m.confirmModal = nil
		return m.resolveConfirm(a.Item.Tag)
	}
	if cmd != nil {
		return *m, cmd, true
	}
	switch msg.(type) {
	case tea.KeyPressMsg, tea.MouseMsg:
		return *m, nil, true
	}
	return *m, nil, false
}

// resolveConfirm applies the chosen answer. Save routes untitled
// sessions through the save-as prompt with the pending action intact.
func (m *Model) resolveConfirm(tag string) (Model, tea.Cmd, bool) {
	switch tag {
	case "save":
		sess := m.editor.Session()
		if sess.Path() == "" {
			m.openSaveAsModal()
			return *m, nil, true
		}
		saveCmd := m.saveSession()
		if sess.Dirty() {
			m.pending = pendingNone
			m.editor.Focus()
			return *m, saveCmd, true
		}
		if next := m.continuePending(); next != nil {
			return *m, tea.Batch(saveCmd, next), true
		}
		m.editor.Focus()
		return *m, saveCmd, true

	case "discard":
		if next := m.continuePending(); next != nil {
			return *m, next, true
		}
		m.editor.Focus()
		return *m, nil, true

	default: // cancel
		m.pending = pendingNone
		m.editor.Focus()
		return *m, nil, true
	}
}

// continuePending runs the action that was waiting on the confirm or
// save-as flow and clears it.
func (m *Model) continuePending() tea.Cmd {
	action := m.pending
	m.pending = pendingNone
	switch action {
	case pendingQuit:
		m.touchStore()
		return tea.Quit
	case pendingNew:
		m.editor.Focus()
		return m.newSession()
	}
	return nil
}
