package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/game"
)

// DealerBot plays the house rule: hit below the dealer's stand total,
// otherwise stay
type DealerBot struct {
	matchLimit
	standOn int
	logger  *log.Logger
}

// NewDealerBot creates a bot that mirrors a dealer standing on standOn
func NewDealerBot(standOn, matches int, logger *log.Logger) *DealerBot {
	return &DealerBot{
		matchLimit: matchLimit{matches: matches},
		standOn:    standOn,
		logger:     logger.WithPrefix("dealer-bot"),
	}
}

func (d *DealerBot) MakeDecision(view game.TableView) (game.Decision, error) {
	decision := game.Stay
	if view.PlayerTotal < d.standOn {
		decision = game.Hit
	}
	d.logger.Debug("Decision", "total", view.PlayerTotal, "decision", decision)
	return decision, nil
}
