package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/twentyone/internal/game"
)

// Play runs the engine on its own goroutine while the TUI owns the
// terminal. It returns once both have finished.
func Play(model *Model, agent *Agent, engine *game.Engine, opts ...tea.ProgramOption) ([]*game.MatchResult, error) {
	program := tea.NewProgram(model, opts...)
	agent.Attach(program)
	engine.GetEventBus().Subscribe(agent)
	defer engine.GetEventBus().Unsubscribe(agent)

	var (
		results []*game.MatchResult
		runErr  error
		done    = make(chan struct{})
	)

	go func() {
		defer close(done)
		results, runErr = engine.Run()
		model.SendQuitSignal()
	}()

	_, uiErr := program.Run()
	model.Close()
	<-done

	return results, errors.Join(runErr, uiErr)
}
