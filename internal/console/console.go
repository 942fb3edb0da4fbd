// Package console is the line-oriented interface: a readline prompt for the
// player's decisions and a printer for engine events.
package console

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/lox/twentyone/internal/display"
	"github.com/lox/twentyone/internal/game"
)

// LineReader is the part of readline the console needs
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// Command represents a console command
type Command struct {
	Name        string
	Aliases     []string
	Description string
	// Handler returns true with a decision when the turn is over
	Handler func(view game.TableView) (game.Decision, bool, error)
}

// Console handles human player interaction on a plain terminal
type Console struct {
	rl       LineReader
	out      io.Writer
	renderer *display.Renderer
	styles   *display.Styles
	commands map[string]*Command
	logger   *log.Logger
}

var (
	_ game.Agent           = (*Console)(nil)
	_ game.EventSubscriber = (*Console)(nil)
)

// New creates a console reading from the terminal with tab completion.
// historyFile may be empty to disable history.
func New(renderer *display.Renderer, out io.Writer, historyFile string, logger *log.Logger) (*Console, error) {
	c := NewWithReader(nil, renderer, out, logger)

	completer := readline.NewPrefixCompleter()
	for _, name := range c.commandNames() {
		completer.Children = append(completer.Children, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          c.styles.Prompt.Render("> "),
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start readline: %w", err)
	}
	c.rl = rl
	return c, nil
}

// NewWithReader creates a console over any line source
func NewWithReader(rl LineReader, renderer *display.Renderer, out io.Writer, logger *log.Logger) *Console {
	c := &Console{
		rl:       rl,
		out:      out,
		renderer: renderer,
		styles:   renderer.Styles(),
		logger:   logger.WithPrefix("console"),
	}
	c.initCommands()
	return c
}

// Close closes the line reader
func (c *Console) Close() error {
	if c.rl == nil {
		return nil
	}
	return c.rl.Close()
}

// initCommands initializes the command system
func (c *Console) initCommands() {
	c.commands = map[string]*Command{
		"hit": {
			Name:        "hit",
			Aliases:     []string{"h"},
			Description: "Take another card",
			Handler: func(game.TableView) (game.Decision, bool, error) {
				return game.Hit, true, nil
			},
		},
		"stay": {
			Name:        "stay",
			Aliases:     []string{"s", "stand"},
			Description: "Keep your hand and end your turn",
			Handler: func(game.TableView) (game.Decision, bool, error) {
				return game.Stay, true, nil
			},
		},
		"hand": {
			Name:        "hand",
			Aliases:     []string{"cards"},
			Description: "Show your hand and the dealer's up card",
			Handler:     c.handleShowHand,
		},
		"help": {
			Name:        "help",
			Aliases:     []string{"?"},
			Description: "Show available commands",
			Handler:     c.handleHelp,
		},
		"quit": {
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Description: "Quit the game",
			Handler: func(game.TableView) (game.Decision, bool, error) {
				return game.Stay, true, game.ErrQuit
			},
		},
	}

	// Add aliases to commands map
	for _, cmd := range c.commandList() {
		for _, alias := range cmd.Aliases {
			c.commands[alias] = cmd
		}
	}
}

// commandList returns each command once, sorted by name
func (c *Console) commandList() []*Command {
	seen := make(map[*Command]bool)
	var list []*Command
	for _, cmd := range c.commands {
		if !seen[cmd] {
			seen[cmd] = true
			list = append(list, cmd)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

func (c *Console) commandNames() []string {
	var names []string
	for _, cmd := range c.commandList() {
		names = append(names, cmd.Name)
	}
	return names
}

// MakeDecision prompts until the player hits, stays or quits
func (c *Console) MakeDecision(view game.TableView) (game.Decision, error) {
	c.showAvailableActions()
	c.updatePrompt(view)

	for {
		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			c.println(c.styles.Info.Render("Use 'quit' to exit"))
			continue
		} else if err != nil {
			// EOF or a closed terminal ends the session
			c.logger.Debug("Input closed", "error", err)
			return game.Stay, game.ErrQuit
		}

		parts := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
		if len(parts) == 0 {
			continue
		}

		cmd, ok := c.commands[parts[0]]
		if !ok {
			c.println(c.styles.Error.Render(display.InvalidDecisionMessage))
			continue
		}

		decision, done, err := cmd.Handler(view)
		if err != nil {
			return game.Stay, err
		}
		if done {
			c.logger.Debug("Decision", "command", cmd.Name, "decision", decision)
			return decision, nil
		}
	}
}

// PlayAgain asks whether to start another match
func (c *Console) PlayAgain(summary game.MatchSummary) (bool, error) {
	c.rl.SetPrompt(c.styles.Prompt.Render(display.PlayAgainPrompt + " "))

	for {
		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err != nil {
			return false, nil
		}
		if display.IsQuit(line) {
			return false, nil
		}

		again, err := display.ParseAnswer(line)
		if err != nil {
			c.println(c.styles.Error.Render(display.InvalidAnswerMessage))
			continue
		}
		c.logger.Debug("Play again", "match", summary.Match, "again", again)
		return again, nil
	}
}

// OnEvent prints engine events as they happen
func (c *Console) OnEvent(event game.GameEvent) {
	if text := c.renderer.Event(event); text != "" {
		c.println(text)
	}
}

// updatePrompt sets the prompt with the current hand and balance
func (c *Console) updatePrompt(view game.TableView) {
	// Format: [K♠, 6♥] 16 vs A♣ $5>
	prompt := fmt.Sprintf("[%s] %d vs %s $%d> ",
		c.renderer.Cards(view.PlayerCards), view.PlayerTotal,
		c.renderer.Cards(view.DealerUpCards), view.Balance)
	c.rl.SetPrompt(c.styles.Prompt.Render(prompt))
}

// showAvailableActions shows what the player can do this turn
func (c *Console) showAvailableActions() {
	c.println("")
	c.println(c.styles.Actions.Render(display.DecisionPrompt))
	c.println("Info: " + c.styles.Info.Render("hand, help, quit"))
}

func (c *Console) handleShowHand(view game.TableView) (game.Decision, bool, error) {
	c.println(fmt.Sprintf("Your hand: %s (total %d)", c.renderer.Cards(view.PlayerCards), view.PlayerTotal))
	c.println("Dealer shows: " + c.renderer.Cards(view.DealerUpCards))
	return game.Stay, false, nil
}

func (c *Console) handleHelp(game.TableView) (game.Decision, bool, error) {
	c.println("Available commands:")
	for _, cmd := range c.commandList() {
		name := cmd.Name
		if len(cmd.Aliases) > 0 {
			name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		c.println(fmt.Sprintf("  %-20s %s", name, c.styles.Info.Render(cmd.Description)))
	}
	return game.Stay, false, nil
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}
