package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/store"
)

// Run loads the forest and starts the interactive TUI. A corrupt data file
// aborts before the terminal is taken over; starting from an empty forest
// instead is the caller's call, not ours.
func Run(s store.Store) error {
	db, err := s.Load()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		cfg = &store.GlobalConfig{}
	}

	m := newAppModel(s, db, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
