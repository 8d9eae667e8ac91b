package modal

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Static is a fixed choice list under a title, for confirmations. There
// is no input row; the list is always focused.
type Static struct {
	title    string
	items    []Item
	selected int
	colors   Colors
}

// NewStatic creates a choice modal over the given items.
func NewStatic(title string, items []Item, colors Colors) Static {
	return Static{title: title, items: items, colors: colors}
}

// HandleMsg processes keys. Enter selects the highlighted item, esc
// closes.
func (s *Static) HandleMsg(msg tea.Msg) (Action, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.Keystroke() {
		case "esc":
			return ActionClose{}, nil
		case "enter":
			if len(s.items) == 0 {
				return ActionClose{}, nil
			}
			return ActionSelect{Item: s.items[s.selected]}, nil
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
		}
	case tea.MouseWheelMsg:
		if msg.Button == tea.MouseWheelUp && s.selected > 0 {
			s.selected--
		} else if msg.Button == tea.MouseWheelDown && s.selected < len(s.items)-1 {
			s.selected++
		}
	}
	return nil, nil
}

// View renders the modal sized to its content, centered over the app.
func (s *Static) View(appWidth, appHeight int) string {
	innerW := lipgloss.Width(s.title)
	for _, it := range s.items {
		line := it.Name
		if it.Desc != "" {
			line += "  " + it.Desc
		}
		if w := lipgloss.Width(line); w > innerW {
			innerW = w
		}
	}
	if innerW < 24 {
		innerW = 24
	}
	if max := appWidth - 8; innerW > max && max > 10 {
		innerW = max
	}

	bg := lipgloss.Color(s.colors.Bg)
	fgStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(s.colors.Fg)).Background(bg)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(s.colors.Dim)).Background(bg)
	selStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.colors.SelFg)).
		Background(lipgloss.Color(s.colors.SelBg))

	var sb strings.Builder
	sb.WriteString(fgStyle.Bold(true).Render(padRight(truncate(s.title, innerW), innerW)))
	sb.WriteByte('\n')
	sb.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))

	for i, it := range s.items {
		sb.WriteByte('\n')
		if i == s.selected {
			sb.WriteString(selStyle.Render(padRight(it.Name, innerW)))
			continue
		}
		line := it.Name
		if it.Desc != "" {
			line += dimStyle.Render("  " + it.Desc)
		}
		sb.WriteString(padRight(line, innerW))
	}

	return renderBox(sb.String(), innerW+6, appWidth, appHeight, s.colors)
}
