package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/game"
)

// RandBot flips a coin for every decision, but never hits on 21
type RandBot struct {
	matchLimit
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, matches int, logger *log.Logger) *RandBot {
	return &RandBot{
		matchLimit: matchLimit{matches: matches},
		rng:        rng,
		logger:     logger.WithPrefix("rand-bot"),
	}
}

func (r *RandBot) MakeDecision(view game.TableView) (game.Decision, error) {
	if view.PlayerTotal >= game.TwentyOne {
		return game.Stay, nil
	}

	decision := game.Decision(r.rng.IntN(2))
	r.logger.Debug("Decision", "total", view.PlayerTotal, "decision", decision)
	return decision, nil
}
