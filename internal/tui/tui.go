// Package tui implements the lacuna shell: a single editor pane over a
// gap buffer session, a status bar reporting the buffer geometry, and
// the modals for opening, saving, and inspecting the buffer.
package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/lacuna/internal/config"
	"github.com/xonecas/lacuna/internal/filesearch"
	"github.com/xonecas/lacuna/internal/session"
	"github.com/xonecas/lacuna/internal/store"
	"github.com/xonecas/lacuna/internal/tui/editor"
	"github.com/xonecas/lacuna/internal/tui/modal"
)

// pendingAction is what a confirmation resolves into once the unsaved
// changes question is answered.
type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingQuit
	pendingNew
)

// Model is the application model.
type Model struct {
	width  int
	height int
	layout layout
	styles styles

	cfg      *config.Config
	store    *store.Store
	searcher *filesearch.Searcher

	editor editor.Model

	// Modals. At most one is non-nil; it owns key and mouse input until
	// it closes.
	openModal     *modal.Model
	saveAsModal   *modal.Prompt
	statsModal    *modal.Info
	keybindsModal *modal.Model
	confirmModal  *modal.Static

	// pending survives across the confirm and save-as modals so quit or
	// new can continue after the save completes.
	pending pendingAction

	// Transient status bar message. noticeSeq invalidates stale expiry
	// ticks when a newer notice replaces an older one.
	notice    string
	noticeErr bool
	noticeSeq int
}

// New creates the shell model over an already opened session. The store
// and searcher may be nil; the features backed by them degrade to no-ops.
func New(sess *session.Session, cfg *config.Config, st *store.Store, searcher *filesearch.Searcher) Model {
	sty := newStyles(cfg.UI.Theme)

	ed := editor.New(sess)
	ed.ShowLineNumbers = cfg.Editor.LineNumbers
	ed.TabWidth = cfg.Editor.TabWidth
	ed.Placeholder = "Type to start writing"
	ed.TextStyle = sty.Text
	ed.CursorStyle = sty.Cursor
	ed.LineNumStyle = sty.LineNum
	ed.PlaceholderSty = sty.Placeholder
	ed.Focus()

	return Model{
		styles:   sty,
		cfg:      cfg,
		store:    st,
		searcher: searcher,
		editor:   ed,
	}
}

// Init starts the cursor blink loop.
func (m Model) Init() tea.Cmd {
	return editor.Blink
}

// modalOpen reports whether any modal currently owns input.
func (m Model) modalOpen() bool {
	return m.openModal != nil ||
		m.saveAsModal != nil ||
		m.statsModal != nil ||
		m.keybindsModal != nil ||
		m.confirmModal != nil
}
