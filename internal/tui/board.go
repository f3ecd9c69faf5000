package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"beandex/internal/engine"
)

// RunBoard starts the interactive collection board.
func RunBoard(store *engine.Store) error {
	p := tea.NewProgram(newBoardModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
