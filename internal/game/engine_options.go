package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/gameid"
	"github.com/lox/twentyone/internal/randutil"
)

// EngineOption configures an Engine during creation.
type EngineOption func(*engineConfig)

// engineConfig holds all configuration for creating an engine.
type engineConfig struct {
	rng         *rand.Rand
	deck        *deck.Deck
	playerName  string
	eventBus    EventBus
	newID       func() string
	recoverDeck bool
}

// NewEngine creates an engine for the given rules and agent.
//
// Example usage:
//
//	// Production - time-seeded deck
//	e := NewEngine(config.DefaultRules(), agent, logger)
//
//	// Testing - deterministic deck
//	e := NewEngine(config.DefaultRules(), agent, logger, WithRNG(randutil.New(42)))
func NewEngine(rules config.Rules, agent Agent, logger *log.Logger, opts ...EngineOption) *Engine {
	if agent == nil {
		panic("agent is required for engine creation")
	}
	if logger == nil {
		logger = log.Default()
	}

	cfg := &engineConfig{
		playerName: "Player",
		newID:      gameid.Generate,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// deck option overrides RNG if provided
	d := cfg.deck
	if d == nil {
		rng := cfg.rng
		if rng == nil {
			rng = randutil.New(randutil.Seed(0))
		}
		d = deck.New(rng)
	}

	bus := cfg.eventBus
	if bus == nil {
		bus = NewEventBus()
	}

	return &Engine{
		rules:       rules,
		agent:       agent,
		logger:      logger.WithPrefix("engine"),
		eventBus:    bus,
		newID:       cfg.newID,
		deck:        d,
		player:      NewPlayer(cfg.playerName, rules.StartingBalance, rules.RichBalance()),
		dealer:      NewDealer(),
		recoverDeck: cfg.recoverDeck,
	}
}

// Option Functions

// WithRNG sets the random source used to shuffle the deck
func WithRNG(rng *rand.Rand) EngineOption {
	return func(c *engineConfig) {
		c.rng = rng
	}
}

// WithDeck sets a specific deck. This overrides WithRNG.
func WithDeck(d *deck.Deck) EngineOption {
	return func(c *engineConfig) {
		c.deck = d
	}
}

// WithPlayerName sets the display name of the player
func WithPlayerName(name string) EngineOption {
	return func(c *engineConfig) {
		c.playerName = name
	}
}

// WithEventBus shares an existing event bus with the engine
func WithEventBus(bus EventBus) EngineOption {
	return func(c *engineConfig) {
		c.eventBus = bus
	}
}

// WithIDGenerator replaces the match ID generator
func WithIDGenerator(newID func() string) EngineOption {
	return func(c *engineConfig) {
		c.newID = newID
	}
}

// WithDeckRecovery makes PlayMatch reset the deck and replay the round when
// the deck runs out mid-round, instead of returning deck.ErrEmptyDeck
func WithDeckRecovery(enabled bool) EngineOption {
	return func(c *engineConfig) {
		c.recoverDeck = enabled
	}
}
