package modal

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Info is a read-only scrollable text modal, used for the buffer stats
// view.
type Info struct {
	title   string
	content string
	scroll  int
	colors  Colors
}

// NewInfo creates an info modal over pre-formatted text.
func NewInfo(title, content string, colors Colors) Info {
	return Info{
		title:   title,
		content: content,
		colors:  colors,
	}
}

// HandleMsg processes key and wheel events. Any of esc, q, or enter
// closes.
func (v *Info) HandleMsg(msg tea.Msg) (Action, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.Keystroke() {
		case "esc", "q", "enter":
			return ActionClose{}, nil
		case "up", "k":
			if v.scroll > 0 {
				v.scroll--
			}
		case "down", "j":
			v.scroll++
		case "pgup":
			v.scroll -= 10
			if v.scroll < 0 {
				v.scroll = 0
			}
		case "pgdown":
			v.scroll += 10
		}
	case tea.MouseWheelMsg:
		if msg.Button == tea.MouseWheelUp {
			if v.scroll > 0 {
				v.scroll--
			}
		} else if msg.Button == tea.MouseWheelDown {
			v.scroll++
		}
	}
	return nil, nil
}

// View renders the modal centered in the terminal at appWidth x appHeight.
func (v *Info) View(appWidth, appHeight int) string {
	w := appWidth * 70 / 100
	h := appHeight * 70 / 100
	if w < 30 {
		w = 30
	}
	if h < 8 {
		h = 8
	}

	innerW := w - 6 // border + padding
	if innerW < 10 {
		innerW = 10
	}

	bg := lipgloss.Color(v.colors.Bg)
	fg := lipgloss.Color(v.colors.Fg)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(v.colors.Dim)).Background(bg)
	fgStyle := lipgloss.NewStyle().Foreground(fg).Background(bg)

	var wrapped []string
	for _, line := range strings.Split(v.content, "\n") {
		if lipgloss.Width(line) <= innerW {
			wrapped = append(wrapped, line)
			continue
		}
		wrapped = append(wrapped, strings.Split(ansi.Hardwrap(line, innerW, true), "\n")...)
	}

	listH := h - 4 // border top/bottom + title + divider
	if listH < 1 {
		listH = 1
	}

	maxScroll := len(wrapped) - listH
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.scroll > maxScroll {
		v.scroll = maxScroll
	}

	divider := strings.Repeat("─", innerW)
	if maxScroll > 0 {
		// Fold a scroll position into the divider's right edge.
		pos := fmt.Sprintf(" %d/%d ", v.scroll+1, maxScroll+1)
		if cut := innerW - lipgloss.Width(pos) - 1; cut > 0 {
			divider = divider[:cut*3] + pos + "─"
		}
	}

	var sb strings.Builder
	sb.WriteString(fgStyle.Bold(true).Render(padRight(truncate(v.title, innerW), innerW)))
	sb.WriteByte('\n')
	sb.WriteString(dimStyle.Render(divider))

	end := v.scroll + listH
	if end > len(wrapped) {
		end = len(wrapped)
	}
	for _, l := range wrapped[v.scroll:end] {
		sb.WriteByte('\n')
		sb.WriteString(fgStyle.Render(padRight(l, innerW)))
	}
	for i := end - v.scroll; i < listH; i++ {
		sb.WriteByte('\n')
		sb.WriteString(fgStyle.Render(strings.Repeat(" ", innerW)))
	}

	return renderBox(sb.String(), w, appWidth, appHeight, v.colors)
}
