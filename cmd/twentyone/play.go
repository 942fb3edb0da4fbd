package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/twentyone/internal/display"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/tui"
)

type PlayCmd struct {
	Name     string `default:"Player" env:"TWENTYONE_PLAYER" help:"Your name at the table"`
	ShowDeck bool   `help:"Show the number of cards left at the start of each round"`
	Archive  string `env:"TWENTYONE_ARCHIVE" help:"Save a transcript of every match to this directory"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.UI, true)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := randutil.Seed(g.Seed)
	logger.Info("Starting interactive game", "seed", seed, "rules", cfg.Rules)

	renderer := display.NewRenderer(display.NewStyles(cfg.UI.Theme), c.Name, c.ShowDeck)
	model := tui.NewModel(renderer, logger)
	agent := tui.NewAgent(model, logger)
	engine := game.NewEngine(cfg.Rules, agent, logger,
		game.WithRNG(randutil.New(seed)),
		game.WithPlayerName(c.Name),
		game.WithDeckRecovery(true),
	)

	if c.Archive != "" {
		engine.GetEventBus().Subscribe(game.NewMatchHistory(game.NewFileMatchHistoryWriter(c.Archive), c.Name, logger))
	}

	model.AddLogEntry(renderer.Welcome(cfg.Rules))

	results, err := tui.Play(model, agent, engine, tea.WithAltScreen())
	fmt.Println(renderer.Goodbye(results))
	if err != nil {
		logger.Error("Game ended with error", "error", err)
		return err
	}
	return nil
}
