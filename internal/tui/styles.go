package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/xonecas/lacuna/internal/config"
	"github.com/xonecas/lacuna/internal/tui/modal"
)

// styles holds every lipgloss style the shell renders with, derived once
// from the theme so Update and View never build styles per frame.
type styles struct {
	Text       lipgloss.Style // document foreground on the app background
	BgFill     lipgloss.Style // background-only fill for padding
	Dim        lipgloss.Style
	Border     lipgloss.Style // separators
	StatusText lipgloss.Style // status bar segments
	StatusName lipgloss.Style // file name segment
	Notice     lipgloss.Style // transient status messages
	Error      lipgloss.Style // error notices

	Cursor      lipgloss.Style // editor cursor block
	LineNum     lipgloss.Style // editor gutter
	Placeholder lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	t := theme.OrDefault()
	bg := lipgloss.Color(t.Background)
	fg := lipgloss.Color(t.Foreground)
	dim := lipgloss.Color(t.Dim)
	accent := lipgloss.Color(t.Accent)
	errc := lipgloss.Color(t.Error)

	return styles{
		Text:       lipgloss.NewStyle().Foreground(fg).Background(bg),
		BgFill:     lipgloss.NewStyle().Background(bg),
		Dim:        lipgloss.NewStyle().Foreground(dim).Background(bg),
		Border:     lipgloss.NewStyle().Foreground(dim).Background(bg),
		StatusText: lipgloss.NewStyle().Foreground(dim).Background(bg),
		StatusName: lipgloss.NewStyle().Foreground(fg).Background(bg),
		Notice:     lipgloss.NewStyle().Foreground(accent).Background(bg),
		Error:      lipgloss.NewStyle().Foreground(errc).Background(bg),

		Cursor:      lipgloss.NewStyle().Foreground(bg).Background(accent),
		LineNum:     lipgloss.NewStyle().Foreground(dim).Background(bg),
		Placeholder: lipgloss.NewStyle().Foreground(dim).Background(bg),
	}
}

// modalColors maps the theme onto the modal package's color set. The
// selection colors come from the theme's selection slot so the highlight
// reads as a band rather than inverted text.
func modalColors(theme config.ThemeConfig) modal.Colors {
	t := theme.OrDefault()
	return modal.Colors{
		Fg:     t.Foreground,
		Bg:     t.Background,
		Dim:    t.Dim,
		SelFg:  t.Foreground,
		SelBg:  t.Selection,
		Border: t.Dim,
	}
}
