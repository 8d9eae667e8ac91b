package tui

import (
	"errors"
	"io/fs"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/lacuna/internal/session"
)

// WelcomeText seeds scratch sessions when the welcome option is on.
// Exported so the entrypoint can seed the initial session the same way.
const WelcomeText = `Welcome to the gap buffer text editor!

This editor keeps the document in a gap buffer: one array with a hole
at the cursor, so typing and deleting at the cursor cost nothing and
the hole moves with you.

Try typing, deleting, and moving the cursor around, and watch the
numbers in the status bar follow the gap.

Press ctrl+g for buffer statistics and ctrl+h for the key bindings.`

// newSession replaces the document with a fresh scratch session.
func (m *Model) newSession() tea.Cmd {
	seed := ""
	if m.cfg.Editor.Welcome {
		seed = WelcomeText
	}
	sess, err := session.New(seed, m.cfg.Editor.ExtraCapacity)
	if err != nil {
		log.Error().Err(err).Msg("scratch session failed")
		return m.setErrorNotice("Could not create new file")
	}
	m.editor.SetSession(sess)
	m.editor.Focus()
	log.Info().Msg("new scratch session")
	return m.setNotice("New file created")
}

// openPath replaces the document with the file at path, restoring the
// cursor position remembered for it.
func (m *Model) openPath(path string) tea.Cmd {
	sess, err := session.Open(path, m.cfg.Editor.ExtraCapacity)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("open failed")
		if errors.Is(err, fs.ErrNotExist) {
			m.store.Forget(path)
		}
		return m.setErrorNotice("Could not open: " + err.Error())
	}
	if cur, ok := m.store.Cursor(path); ok {
		sess.RestoreCursor(cur)
	}
	m.editor.SetSession(sess)
	m.editor.Focus()
	m.store.Touch(path, sess.Cursor())
	log.Info().Str("path", path).Int("length", sess.Len()).Msg("opened file")
	return m.setNotice("Opened: " + sess.Name())
}

// saveSession writes the session to its path. Callers have checked the
// path is set.
func (m *Model) saveSession() tea.Cmd {
	sess := m.editor.Session()
	if err := sess.Save(); err != nil {
		log.Warn().Err(err).Str("path", sess.Path()).Msg("save failed")
		return m.setErrorNotice("Could not save: " + err.Error())
	}
	m.store.Touch(sess.Path(), sess.Cursor())
	log.Info().Str("path", sess.Path()).Int("length", sess.Len()).Msg("saved file")
	return m.setNotice("Saved: " + sess.Name())
}

// saveSessionAs writes the session to a new path and rebinds it there.
func (m *Model) saveSessionAs(path string) tea.Cmd {
	sess := m.editor.Session()
	if err := sess.SaveAs(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("save as failed")
		return m.setErrorNotice("Could not save: " + err.Error())
	}
	m.store.Touch(sess.Path(), sess.Cursor())
	log.Info().Str("path", sess.Path()).Int("length", sess.Len()).Msg("saved file")
	return m.setNotice("Saved: " + sess.Name())
}

// touchStore records the session's path and cursor so the next run can
// offer it under recent files and restore the position. Untitled
// sessions have nothing to record.
func (m *Model) touchStore() {
	sess := m.editor.Session()
	if sess == nil || sess.Path() == "" {
		return
	}
	m.store.Touch(sess.Path(), sess.Cursor())
}
