package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/showdown/internal/tui"
)

// PlayCmd opens the interactive board
type PlayCmd struct{}

func (c *PlayCmd) Run(a *app) error {
	p := tea.NewProgram(tui.New(a.logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
