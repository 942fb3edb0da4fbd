package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/display"
	"github.com/lox/twentyone/internal/game"
)

// Agent handles human player interaction through the TUI. It runs on the
// engine goroutine and talks to the model only through messages.
type Agent struct {
	model    *Model
	renderer *display.Renderer
	send     func(tea.Msg)
	logger   *log.Logger
}

var (
	_ game.Agent           = (*Agent)(nil)
	_ game.EventSubscriber = (*Agent)(nil)
)

// NewAgent creates an agent bound to model. Until Attach is called,
// messages are applied to the model directly, which is what tests want.
func NewAgent(model *Model, logger *log.Logger) *Agent {
	a := &Agent{
		model:    model,
		renderer: model.renderer,
		logger:   logger.WithPrefix("ui"),
	}
	a.send = func(msg tea.Msg) { model.Update(msg) }
	return a
}

// Attach routes messages through a running program
func (a *Agent) Attach(program *tea.Program) {
	a.send = program.Send
}

// OnEvent renders engine events into the log and sidebar
func (a *Agent) OnEvent(event game.GameEvent) {
	a.send(eventMsg{event: event, text: a.renderer.Event(event)})
}

// MakeDecision waits for the player to type hit or stay
func (a *Agent) MakeDecision(view game.TableView) (game.Decision, error) {
	a.send(promptMsg{mode: modeDecision, view: &view})
	defer a.send(promptMsg{mode: modeWaiting})

	for {
		a.logger.Info("Waiting for user action", "round", view.Round, "total", view.PlayerTotal)
		result := a.model.WaitForAction()
		if !result.Continue || display.IsQuit(result.Action) {
			a.logger.Info("User chose to quit")
			return game.Stay, game.ErrQuit
		}

		decision, err := display.ParseDecision(result.Action)
		if err != nil {
			a.logger.Debug("Rejected input", "action", result.Action)
			a.send(logMsg(a.renderer.Styles().Error.Render(display.InvalidDecisionMessage)))
			continue
		}

		a.logger.Info("Received user action", "decision", decision)
		return decision, nil
	}
}

// PlayAgain asks whether to start another match
func (a *Agent) PlayAgain(summary game.MatchSummary) (bool, error) {
	a.send(promptMsg{mode: modePlayAgain})
	defer a.send(promptMsg{mode: modeWaiting})

	a.send(logMsg(a.renderer.Styles().Prompt.Render(display.PlayAgainPrompt)))
	for {
		result := a.model.WaitForAction()
		if !result.Continue || display.IsQuit(result.Action) {
			return false, nil
		}

		again, err := display.ParseAnswer(result.Action)
		if err != nil {
			a.send(logMsg(a.renderer.Styles().Error.Render(display.InvalidAnswerMessage)))
			continue
		}

		a.logger.Info("Play again answered", "match", summary.Match, "again", again)
		return again, nil
	}
}
