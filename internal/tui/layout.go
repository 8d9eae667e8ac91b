package tui

import "image"

// statusRows is the height of the status area: separator line + bar.
const statusRows = 2

// layout holds the screen rectangles the shell renders into. Rectangles
// use screen cell coordinates with the origin at the top left.
type layout struct {
	editor image.Rectangle
	status image.Rectangle
}

// generateLayout derives the pane rectangles for a terminal size. The
// editor gets everything above the status area.
func generateLayout(width, height int) layout {
	contentH := height - statusRows
	if contentH < 0 {
		contentH = 0
	}
	return layout{
		editor: image.Rect(0, 0, width, contentH),
		status: image.Rect(0, contentH, width, height),
	}
}

// inRect reports whether the cell at x, y falls inside r.
func inRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}
