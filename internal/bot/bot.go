// Package bot provides automated players for Twenty-One. Every bot
// satisfies game.Agent, so it can sit in the engine wherever a human can.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/game"
)

// Strategy names a bot playing style
type Strategy string

const (
	StrategyDealer    Strategy = "dealer"
	StrategyThreshold Strategy = "threshold"
	StrategyRandom    Strategy = "random"
)

// Strategies lists every strategy New understands
var Strategies = []Strategy{StrategyDealer, StrategyThreshold, StrategyRandom}

// Options configures a bot built with New
type Options struct {
	Strategy Strategy
	StandOn  int        // threshold for StrategyThreshold and StrategyDealer
	Matches  int        // matches to play before declining another
	RNG      *rand.Rand // required for StrategyRandom
	Logger   *log.Logger
}

// New creates a bot for the given strategy
func New(opts Options) (game.Agent, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	switch opts.Strategy {
	case StrategyDealer:
		return NewDealerBot(opts.StandOn, opts.Matches, logger), nil
	case StrategyThreshold:
		return NewThresholdBot(opts.StandOn, opts.Matches, logger), nil
	case StrategyRandom:
		if opts.RNG == nil {
			return nil, fmt.Errorf("strategy %q requires a random source", opts.Strategy)
		}
		return NewRandBot(opts.RNG, opts.Matches, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", opts.Strategy)
	}
}

// matchLimit answers the play-again question for bots: keep going until
// the configured number of matches has been played
type matchLimit struct {
	matches int
	played  int
}

func (m *matchLimit) PlayAgain(summary game.MatchSummary) (bool, error) {
	m.played++
	return m.played < m.matches, nil
}

// Played returns the number of matches the bot has finished
func (m *matchLimit) Played() int {
	return m.played
}
