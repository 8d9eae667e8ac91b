package editor

import tea "charm.land/bubbletea/v2"

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if !m.focus || m.sess == nil {
			break
		}
		moved := true
		key := msg.Keystroke()

		switch key {
		// --- Navigation ---
		case "up":
			m.moveVert(-1)
		case "down":
			m.moveVert(1)
		case "left":
			m.moveLeft()
		case "right":
			m.moveRight()
		case "home", "ctrl+a":
			m.moveLineStart()
		case "end", "ctrl+e":
			m.moveLineEnd()
		case "pgup":
			m.moveVert(-m.height)
		case "pgdown":
			m.moveVert(m.height)
		case "ctrl+home":
			m.moveDocStart()
		case "ctrl+end":
			m.moveDocEnd()

		// --- Editing ---
		case "backspace", "ctrl+h":
			m.deleteBack()
		case "delete", "ctrl+d":
			m.deleteForward()
		case "enter":
			m.insertRune('\n')
		case "tab":
			m.insertRune('\t')

		default:
			moved = false
			if msg.Text != "" {
				m.InsertText(msg.Text)
				moved = true
			}
		}

		if moved {
			cmds = append(cmds, m.cursor.Blink())
		}

	case tea.MouseClickMsg:
		if !m.focus || m.sess == nil {
			break
		}
		if msg.Button == tea.MouseLeft {
			m.stickyCol = -1
			m.moveTo(m.screenToOffset(msg.X, msg.Y))
			cmds = append(cmds, m.cursor.Blink())
		}

	case tea.MouseWheelMsg:
		if !m.focus {
			break
		}
		if msg.Button == tea.MouseWheelUp {
			m.ScrollBy(-3)
		} else if msg.Button == tea.MouseWheelDown {
			m.ScrollBy(3)
		}
	}

	// Forward to cursor for blink handling
	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
