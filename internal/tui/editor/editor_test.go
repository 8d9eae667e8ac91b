package editor

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/xonecas/lacuna/internal/session"
)

func key(ch rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ch, Text: string(ch)}
}

func special(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "delete":
		return tea.KeyPressMsg{Code: tea.KeyDelete}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "ctrl+home":
		return tea.KeyPressMsg{Code: tea.KeyHome, Mod: tea.ModCtrl}
	case "ctrl+end":
		return tea.KeyPressMsg{Code: tea.KeyEnd, Mod: tea.ModCtrl}
	default:
		return tea.KeyPressMsg{}
	}
}

// newTestEditor builds a focused editor over text with the cursor at
// offset.
func newTestEditor(t *testing.T, text string, offset, w, h int) Model {
	t.Helper()
	sess, err := session.New(text, 32)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	if err := sess.MoveCursorTo(offset); err != nil {
		t.Fatalf("MoveCursorTo(%d): %v", offset, err)
	}
	ed := New(sess)
	ed.SetWidth(w)
	ed.SetHeight(h)
	ed.Focus()
	ed.Sync()
	return ed
}

func TestTypingInsertsAtCursor(t *testing.T) {
	ed := newTestEditor(t, "", 0, 40, 5)
	ed, _ = ed.Update(key('h'))
	ed, _ = ed.Update(key('i'))

	if got := ed.Session().Text(); got != "hi" {
		t.Fatalf("text = %q, want %q", got, "hi")
	}
	if row, col := ed.Position(); row != 0 || col != 2 {
		t.Fatalf("position = (%d,%d), want (0,2)", row, col)
	}
}

func TestEnterSplitsLine(t *testing.T) {
	ed := newTestEditor(t, "helloworld", 5, 40, 5)
	ed, _ = ed.Update(special("enter"))

	if got := ed.Session().Text(); got != "hello\nworld" {
		t.Fatalf("text = %q, want %q", got, "hello\nworld")
	}
	if row, col := ed.Position(); row != 1 || col != 0 {
		t.Fatalf("position = (%d,%d), want (1,0)", row, col)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	ed := newTestEditor(t, "hello\nworld", 6, 40, 5)
	ed, _ = ed.Update(special("backspace"))

	if got := ed.Session().Text(); got != "helloworld" {
		t.Fatalf("text = %q, want %q", got, "helloworld")
	}
	if got := ed.Session().Cursor(); got != 5 {
		t.Fatalf("cursor = %d, want 5", got)
	}
}

func TestDeleteForwardJoinsLines(t *testing.T) {
	ed := newTestEditor(t, "hello\nworld", 5, 40, 5)
	ed, _ = ed.Update(special("delete"))

	if got := ed.Session().Text(); got != "helloworld" {
		t.Fatalf("text = %q, want %q", got, "helloworld")
	}
	if got := ed.Session().Cursor(); got != 5 {
		t.Fatalf("cursor = %d, want 5", got)
	}
}

func TestBoundaryDeletesKeepDocument(t *testing.T) {
	ed := newTestEditor(t, "abc", 0, 40, 5)
	ed, _ = ed.Update(special("backspace"))
	if got := ed.Session().Text(); got != "abc" {
		t.Fatalf("backspace at start changed text: %q", got)
	}

	ed = newTestEditor(t, "abc", 3, 40, 5)
	ed, _ = ed.Update(special("delete"))
	if got := ed.Session().Text(); got != "abc" {
		t.Fatalf("delete at end changed text: %q", got)
	}
}

func TestVerticalMovesKeepStickyColumn(t *testing.T) {
	// Moving down through a short line and back should return the
	// cursor to its original column.
	ed := newTestEditor(t, "alpha\nbe\ngamma", 4, 40, 5)

	ed, _ = ed.Update(special("down"))
	if row, col := ed.Position(); row != 1 || col != 2 {
		t.Fatalf("after down: (%d,%d), want (1,2)", row, col)
	}
	ed, _ = ed.Update(special("down"))
	if row, col := ed.Position(); row != 2 || col != 4 {
		t.Fatalf("after down down: (%d,%d), want (2,4)", row, col)
	}
	ed, _ = ed.Update(special("up"))
	ed, _ = ed.Update(special("up"))
	if got := ed.Session().Cursor(); got != 4 {
		t.Fatalf("cursor = %d, want 4", got)
	}
}

func TestHorizontalMoveResetsStickyColumn(t *testing.T) {
	ed := newTestEditor(t, "abcdef\nab\nabcdef", 5, 40, 5)

	ed, _ = ed.Update(special("down"))
	if row, col := ed.Position(); row != 1 || col != 2 {
		t.Fatalf("after down: (%d,%d), want (1,2)", row, col)
	}
	ed, _ = ed.Update(special("left"))
	ed, _ = ed.Update(special("down"))
	if row, col := ed.Position(); row != 2 || col != 1 {
		t.Fatalf("after left down: (%d,%d), want (2,1)", row, col)
	}
}

func TestHomeEndKeys(t *testing.T) {
	ed := newTestEditor(t, "hello\nworld", 8, 40, 5)

	ed, _ = ed.Update(special("home"))
	if got := ed.Session().Cursor(); got != 6 {
		t.Fatalf("home: cursor = %d, want 6", got)
	}
	ed, _ = ed.Update(special("end"))
	if got := ed.Session().Cursor(); got != 11 {
		t.Fatalf("end: cursor = %d, want 11", got)
	}
}

func TestCtrlHomeEndJumpToDocumentBounds(t *testing.T) {
	ed := newTestEditor(t, "hello\nworld", 8, 40, 5)

	ed, _ = ed.Update(special("ctrl+home"))
	if got := ed.Session().Cursor(); got != 0 {
		t.Fatalf("ctrl+home: cursor = %d, want 0", got)
	}
	ed, _ = ed.Update(special("ctrl+end"))
	if got := ed.Session().Cursor(); got != 11 {
		t.Fatalf("ctrl+end: cursor = %d, want 11", got)
	}
}

func TestTabInsertsTabRune(t *testing.T) {
	ed := newTestEditor(t, "", 0, 40, 5)
	ed, _ = ed.Update(special("tab"))
	if got := ed.Session().Text(); got != "\t" {
		t.Fatalf("text = %q, want tab", got)
	}
}

func TestClickMovesCursor(t *testing.T) {
	ed := newTestEditor(t, "alpha\nbeta\ngamma", 0, 20, 5)
	ed, _ = ed.Update(tea.MouseClickMsg{X: 2, Y: 1, Button: tea.MouseLeft})
	if got := ed.Session().Cursor(); got != 8 {
		t.Fatalf("cursor = %d, want 8", got)
	}

	// With the gutter on, clicks land past the line numbers.
	ed = newTestEditor(t, "alpha\nbeta\ngamma", 0, 20, 5)
	ed.ShowLineNumbers = true
	ed.View() // settle gutter width
	ed, _ = ed.Update(tea.MouseClickMsg{X: 5, Y: 1, Button: tea.MouseLeft})
	if got := ed.Session().Cursor(); got != 8 {
		t.Fatalf("cursor with gutter = %d, want 8", got)
	}
}

func TestClickPastEndClampsToDocument(t *testing.T) {
	ed := newTestEditor(t, "hi\nthere", 0, 40, 10)
	ed, _ = ed.Update(tea.MouseClickMsg{X: 30, Y: 8, Button: tea.MouseLeft})
	if got := ed.Session().Cursor(); got != ed.Session().Len() {
		t.Fatalf("cursor = %d, want %d", got, ed.Session().Len())
	}
}

func TestWheelScrollsWithoutMovingCursor(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	ed := newTestEditor(t, strings.Join(lines, "\n"), 0, 40, 5)

	ed, _ = ed.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if ed.scroll != 3 {
		t.Fatalf("scroll = %d, want 3", ed.scroll)
	}
	if got := ed.Session().Cursor(); got != 0 {
		t.Fatalf("cursor moved to %d on scroll", got)
	}

	ed, _ = ed.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	ed, _ = ed.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if ed.scroll != 0 {
		t.Fatalf("scroll = %d, want 0 after clamping", ed.scroll)
	}
}

func TestSoftWrapSplitsLongLines(t *testing.T) {
	ed := newTestEditor(t, "abcdefghijklmnopqrstuvwxy", 0, 10, 5)
	ed.Blur()

	rows := strings.Split(ed.View(), "\n")
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if rows[0] != "abcdefghij" {
		t.Errorf("row 0 = %q", rows[0])
	}
	if rows[1] != "klmnopqrst" {
		t.Errorf("row 1 = %q", rows[1])
	}
	if rows[2] != "uvwxy     " {
		t.Errorf("row 2 = %q", rows[2])
	}
}

func TestViewRowsHaveUniformWidth(t *testing.T) {
	ed := newTestEditor(t, "\tindented\nshort\na much longer line that wraps around", 0, 30, 6)
	ed.ShowLineNumbers = true

	rows := strings.Split(ed.View(), "\n")
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	for i, row := range rows {
		if w := lipgloss.Width(row); w != 30 {
			t.Errorf("row %d: width = %d, want 30", i, w)
		}
	}
}

func TestGutterShowsLineNumbers(t *testing.T) {
	ed := newTestEditor(t, "one\ntwo\nthree", 0, 20, 4)
	ed.ShowLineNumbers = true
	ed.Blur()

	rows := strings.Split(ed.View(), "\n")
	if !strings.HasPrefix(rows[0], " 1 one") {
		t.Errorf("row 0 = %q", rows[0])
	}
	if !strings.HasPrefix(rows[1], " 2 two") {
		t.Errorf("row 1 = %q", rows[1])
	}
}

func TestPlaceholderShownWhenEmpty(t *testing.T) {
	ed := newTestEditor(t, "", 0, 40, 5)
	ed.Placeholder = "start typing"
	ed.Blur()

	if got := ed.View(); !strings.Contains(got, "start typing") {
		t.Fatalf("view missing placeholder:\n%s", got)
	}
}

func TestExpandTabs(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\thello", "    hello"},
		{"\t\thello", "        hello"},
		{"ab\tc", "ab  c"},
		{"no tabs", "no tabs"},
	}
	for _, tc := range cases {
		if got := expandTabs(tc.in, 4); got != tc.want {
			t.Errorf("expandTabs(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSyncPicksUpExternalCursorMove(t *testing.T) {
	ed := newTestEditor(t, "hello world", 0, 40, 5)
	if err := ed.Session().MoveCursorTo(3); err != nil {
		t.Fatalf("MoveCursorTo: %v", err)
	}
	ed.Sync()
	if row, col := ed.Position(); row != 0 || col != 3 {
		t.Fatalf("position = (%d,%d), want (0,3)", row, col)
	}
}
