package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// ELM messages
// ---------------------------------------------------------------------------

// noticeExpiredMsg clears the transient status notice. The sequence
// number guards against an old tick expiring a newer notice.
type noticeExpiredMsg struct{ seq int }

// ---------------------------------------------------------------------------
// ELM commands
// ---------------------------------------------------------------------------

const noticeDuration = 4 * time.Second

// setNotice shows a transient message in the status bar and returns the
// command that clears it after noticeDuration.
func (m *Model) setNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeErr = false
	return m.noticeExpiry()
}

// setErrorNotice is setNotice in the error style.
func (m *Model) setErrorNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeErr = true
	return m.noticeExpiry()
}

func (m *Model) noticeExpiry() tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
