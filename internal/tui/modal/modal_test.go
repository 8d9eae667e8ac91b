package modal

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

var testColors = Colors{
	Fg: "#eee", Bg: "#111", Dim: "#666",
	SelFg: "#fff", SelBg: "#444", Border: "#555",
}

func fileItems(query string) []Item {
	all := []Item{
		{Name: "notes.txt"},
		{Name: "poem.txt"},
		{Name: "draft.md"},
	}
	if query == "" {
		return all
	}
	var out []Item
	for _, it := range all {
		if strings.Contains(it.Name, query) {
			out = append(out, it)
		}
	}
	return out
}

func key(ch rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ch, Text: string(ch)}
}

func special(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	default:
		return tea.KeyPressMsg{}
	}
}

func TestEscapeCloses(t *testing.T) {
	m := New(fileItems, "> ", testColors)
	a, _ := m.HandleMsg(special("esc"))
	if _, ok := a.(ActionClose); !ok {
		t.Fatalf("expected ActionClose, got %T", a)
	}
}

func TestEnterSelectsFirst(t *testing.T) {
	m := New(fileItems, "> ", testColors)
	a, _ := m.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok {
		t.Fatalf("expected ActionSelect, got %T", a)
	}
	if sel.Item.Name != "notes.txt" {
		t.Fatalf("expected notes.txt, got %s", sel.Item.Name)
	}
}

func TestDownThenEnterSelectsHighlighted(t *testing.T) {
	m := New(fileItems, "> ", testColors)
	m.HandleMsg(special("down")) // enter list, selected=0
	m.HandleMsg(special("down")) // selected=1
	a, _ := m.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok {
		t.Fatalf("expected ActionSelect, got %T", a)
	}
	if sel.Item.Name != "poem.txt" {
		t.Fatalf("expected poem.txt, got %s", sel.Item.Name)
	}
}

func TestUpFromTopReturnsFocusToInput(t *testing.T) {
	m := New(fileItems, "> ", testColors)
	m.HandleMsg(special("down")) // enter list
	if !m.inList {
		t.Fatal("expected inList=true")
	}
	m.HandleMsg(special("up")) // back to input
	if m.inList {
		t.Fatal("expected inList=false")
	}
}

func TestTypingProducesDebounceCmd(t *testing.T) {
	m := New(fileItems, "> ", testColors)
	_, cmd := m.HandleMsg(key('a'))
	if cmd == nil {
		t.Fatal("expected debounce cmd")
	}
	if string(m.input) != "a" {
		t.Fatalf("expected input 'a', got %q", string(m.input))
	}
}

func TestDebounceFiresSearch(t *testing.T) {
	called := false
	searchFn := func(q string) []Item {
		if q == "x" {
			called = true
		}
		return nil
	}
	m := New(searchFn, "> ", testColors)
	m.HandleMsg(key('x'))
	m.HandleMsg(debounceMsg{seq: m.seq})
	if !called {
		t.Fatal("expected search to be called")
	}
}

func TestStaleDebounceIgnored(t *testing.T) {
	callCount := 0
	searchFn := func(q string) []Item {
		if q != "" {
			callCount++
		}
		return nil
	}
	m := New(searchFn, "> ", testColors)
	m.HandleMsg(key('a'))
	staleSeq := m.seq
	m.HandleMsg(key('b')) // bumps seq
	m.HandleMsg(debounceMsg{seq: staleSeq})
	if callCount != 0 {
		t.Fatalf("expected 0 search calls for stale debounce, got %d", callCount)
	}
}

func TestBackspaceRemovesChar(t *testing.T) {
	m := New(fileItems, "> ", testColors)
	m.HandleMsg(key('a'))
	m.HandleMsg(key('b'))
	m.HandleMsg(special("backspace"))
	if string(m.input) != "a" {
		t.Fatalf("expected 'a', got %q", string(m.input))
	}
}

func TestWheelMovesSelection(t *testing.T) {
	m := New(fileItems, "> ", testColors)
	m.HandleMsg(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if !m.inList || m.selected != 0 {
		t.Fatalf("after wheel down: inList=%v selected=%d", m.inList, m.selected)
	}
	m.HandleMsg(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}
	m.HandleMsg(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if m.selected != 0 {
		t.Fatalf("selected = %d, want 0", m.selected)
	}
}

func TestViewRenders(t *testing.T) {
	m := New(fileItems, "> ", testColors)
	v := m.View(100, 40)
	if v == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestEmptyResultsEnterNoAction(t *testing.T) {
	m := New(func(string) []Item { return nil }, "> ", testColors)
	a, _ := m.HandleMsg(special("enter"))
	if a != nil {
		t.Fatalf("expected nil action, got %T", a)
	}
}

func TestStaticChoices(t *testing.T) {
	s := NewStatic("Unsaved changes", []Item{
		{Name: "Save and quit", Tag: "save"},
		{Name: "Discard changes", Tag: "discard"},
		{Name: "Cancel", Tag: "cancel"},
	}, testColors)

	s.HandleMsg(special("down"))
	a, _ := s.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok {
		t.Fatalf("expected ActionSelect, got %T", a)
	}
	if sel.Item.Tag != "discard" {
		t.Fatalf("expected discard, got %s", sel.Item.Tag)
	}

	if a, _ := s.HandleMsg(special("esc")); a == nil {
		t.Fatal("expected ActionClose on esc")
	}

	if v := s.View(80, 24); v == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestStaticSelectionClamps(t *testing.T) {
	s := NewStatic("t", []Item{{Name: "only"}}, testColors)
	s.HandleMsg(special("up"))
	s.HandleMsg(special("down"))
	s.HandleMsg(special("down"))
	a, _ := s.HandleMsg(special("enter"))
	sel, ok := a.(ActionSelect)
	if !ok {
		t.Fatalf("expected ActionSelect, got %T", a)
	}
	if sel.Item.Name != "only" {
		t.Fatalf("selected %q", sel.Item.Name)
	}
}

func TestPromptSubmit(t *testing.T) {
	p := NewPrompt("Save as", "path: ", "", testColors)
	for _, r := range "a.txt" {
		p.HandleMsg(key(r))
	}
	a, _ := p.HandleMsg(special("enter"))
	sub, ok := a.(ActionSubmit)
	if !ok {
		t.Fatalf("expected ActionSubmit, got %T", a)
	}
	if sub.Value != "a.txt" {
		t.Fatalf("value = %q, want a.txt", sub.Value)
	}
}

func TestPromptEmptySubmitIgnored(t *testing.T) {
	p := NewPrompt("Save as", "path: ", "", testColors)
	if a, _ := p.HandleMsg(special("enter")); a != nil {
		t.Fatalf("expected nil action for empty submit, got %T", a)
	}
	p.HandleMsg(key(' '))
	if a, _ := p.HandleMsg(special("enter")); a != nil {
		t.Fatalf("expected nil action for blank submit, got %T", a)
	}
}

func TestPromptEditing(t *testing.T) {
	p := NewPrompt("Save as", "path: ", "note.txt", testColors)
	if p.Value() != "note.txt" {
		t.Fatalf("initial value = %q", p.Value())
	}
	// Cursor starts at the end; erase the extension.
	for i := 0; i < 4; i++ {
		p.HandleMsg(special("backspace"))
	}
	for _, r := range ".md" {
		p.HandleMsg(key(r))
	}
	if p.Value() != "note.md" {
		t.Fatalf("value = %q, want note.md", p.Value())
	}
	if v := p.View(80, 24); v == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestInfoCloseKeys(t *testing.T) {
	for _, name := range []string{"esc", "enter"} {
		v := NewInfo("Buffer stats", "line", testColors)
		a, _ := v.HandleMsg(special(name))
		if _, ok := a.(ActionClose); !ok {
			t.Fatalf("key %s: expected ActionClose, got %T", name, a)
		}
	}
	v := NewInfo("Buffer stats", "line", testColors)
	a, _ := v.HandleMsg(key('q'))
	if _, ok := a.(ActionClose); !ok {
		t.Fatalf("q: expected ActionClose, got %T", a)
	}
}

func TestInfoScrollClamps(t *testing.T) {
	v := NewInfo("t", strings.Repeat("line\n", 40), testColors)
	for i := 0; i < 100; i++ {
		v.HandleMsg(special("down"))
	}
	v.View(40, 12) // clamps scroll to content
	if v.scroll > 40 {
		t.Fatalf("scroll = %d, beyond content", v.scroll)
	}
	for i := 0; i < 200; i++ {
		v.HandleMsg(special("up"))
	}
	if v.scroll != 0 {
		t.Fatalf("scroll = %d, want 0", v.scroll)
	}
	if out := v.View(40, 12); out == "" {
		t.Fatal("expected non-empty view")
	}
}
