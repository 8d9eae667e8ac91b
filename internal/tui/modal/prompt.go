package modal

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Prompt is a one-line input modal for short free-form answers, like the
// path in save-as.
type Prompt struct {
	title  string
	label  string
	input  []rune
	cursor int
	colors Colors
}

// NewPrompt creates an input modal seeded with initial text, cursor at
// the end.
func NewPrompt(title, label, initial string, colors Colors) Prompt {
	rs := []rune(initial)
	return Prompt{
		title:  title,
		label:  label,
		input:  rs,
		cursor: len(rs),
		colors: colors,
	}
}

// Value returns the current input text.
func (p *Prompt) Value() string { return string(p.input) }

// HandleMsg processes keys. Enter submits the trimmed value; an empty
// value is ignored rather than submitted.
func (p *Prompt) HandleMsg(msg tea.Msg) (Action, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil, nil
	}
	switch key.Keystroke() {
	case "esc":
		return ActionClose{}, nil
	case "enter":
		value := strings.TrimSpace(string(p.input))
		if value == "" {
			return nil, nil
		}
		return ActionSubmit{Value: value}, nil
	case "backspace":
		if p.cursor > 0 {
			p.input = append(p.input[:p.cursor-1], p.input[p.cursor:]...)
			p.cursor--
		}
	case "delete":
		if p.cursor < len(p.input) {
			p.input = append(p.input[:p.cursor], p.input[p.cursor+1:]...)
		}
	case "left":
		if p.cursor > 0 {
			p.cursor--
		}
	case "right":
		if p.cursor < len(p.input) {
			p.cursor++
		}
	case "home", "ctrl+a":
		p.cursor = 0
	case "end", "ctrl+e":
		p.cursor = len(p.input)
	case "ctrl+u":
		p.input = p.input[p.cursor:]
		p.cursor = 0
	default:
		if key.Text != "" {
			for _, r := range key.Text {
				p.input = append(p.input[:p.cursor], append([]rune{r}, p.input[p.cursor:]...)...)
				p.cursor++
			}
		}
	}
	return nil, nil
}

// View renders the modal centered over the app.
func (p *Prompt) View(appWidth, appHeight int) string {
	w := appWidth * 60 / 100
	if w < 40 {
		w = 40
	}
	if w > appWidth-4 && appWidth > 8 {
		w = appWidth - 4
	}
	innerW := w - 6
	if innerW < 10 {
		innerW = 10
	}

	bg := lipgloss.Color(p.colors.Bg)
	fgStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.colors.Fg)).Background(bg)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.colors.Dim)).Background(bg)
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	before := string(p.input[:p.cursor])
	cursorChar := " "
	after := ""
	if p.cursor < len(p.input) {
		cursorChar = string(p.input[p.cursor])
		after = string(p.input[p.cursor+1:])
	}
	inputLine := p.label + before + cursorStyle.Render(cursorChar) + after

	var sb strings.Builder
	sb.WriteString(fgStyle.Bold(true).Render(padRight(truncate(p.title, innerW), innerW)))
	sb.WriteByte('\n')
	sb.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	sb.WriteByte('\n')
	sb.WriteString(inputLine)

	return renderBox(sb.String(), w, appWidth, appHeight, p.colors)
}
