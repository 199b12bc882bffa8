// Package tui is the terminal host for the board: it renders the board's document and
// turns key presses into the events the views listen for.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Markup is the document holding the app mount point and templates.
	Markup string
	// Theme is light, dark or auto.
	Theme  string
	Logger *slog.Logger
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference()

	m, err := newAppModel(opts.Markup, opts.Logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
