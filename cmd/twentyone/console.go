package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/twentyone/internal/bot"
	"github.com/lox/twentyone/internal/console"
	"github.com/lox/twentyone/internal/display"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
)

type ConsoleCmd struct {
	Name     string `default:"Player" env:"TWENTYONE_PLAYER" help:"Your name at the table"`
	ShowDeck bool   `help:"Show the number of cards left at the start of each round"`
	Archive  string `env:"TWENTYONE_ARCHIVE" help:"Save a transcript of every match to this directory"`
	Bot      string `help:"Let a bot play instead (dealer|threshold|random)"`
	StandOn  int    `default:"17" help:"Total the bot stands on"`
	Matches  int    `default:"1" help:"Matches the bot plays"`
	History  string `default:"${history}" help:"Readline history file"`
}

func (c *ConsoleCmd) Run(g *Globals) error {
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
	logger.Info("Starting console game", "seed", seed, "bot", c.Bot)

	name := c.Name
	if c.Bot != "" {
		name = "Bot"
	}
	renderer := display.NewRenderer(display.NewStyles(cfg.UI.Theme), name, c.ShowDeck)

	var (
		agent game.Agent
		cons  *console.Console
	)
	if c.Bot != "" {
		// a bot needs no line input, only the event printer
		cons = console.NewWithReader(nil, renderer, os.Stdout, logger)
		agent, err = bot.New(bot.Options{
			Strategy: bot.Strategy(c.Bot),
			StandOn:  c.StandOn,
			Matches:  c.Matches,
			RNG:      randutil.New(randutil.Derive(seed, 1)),
			Logger:   logger,
		})
		if err != nil {
			return err
		}
	} else {
		cons, err = console.New(renderer, os.Stdout, c.History, logger)
		if err != nil {
			return err
		}
		agent = cons
	}
	defer func() {
		if err := cons.Close(); err != nil {
			logger.Error("Failed to close console", "error", err)
		}
	}()

	engine := game.NewEngine(cfg.Rules, agent, logger,
		game.WithRNG(randutil.New(seed)),
		game.WithPlayerName(name),
		game.WithDeckRecovery(true),
	)
	engine.GetEventBus().Subscribe(cons)
	if c.Archive != "" {
		engine.GetEventBus().Subscribe(game.NewMatchHistory(game.NewFileMatchHistoryWriter(c.Archive), name, logger))
	}

	fmt.Println(renderer.Welcome(cfg.Rules))
	results, err := engine.Run()
	fmt.Println(renderer.Goodbye(results))
	return err
}

// historyFile is the default readline history location
func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "twentyone_history")
}
