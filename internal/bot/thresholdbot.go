package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
)

// weakUpCardStand is the total ThresholdBot stands on when the dealer shows
// a weak up card and is likely to bust
const weakUpCardStand = 12

// ThresholdBot stands once its total reaches standOn. Against a dealer
// showing 2 through 6 it stands earlier, on 12 or more.
type ThresholdBot struct {
	matchLimit
	standOn int
	logger  *log.Logger
}

// NewThresholdBot creates a threshold bot
func NewThresholdBot(standOn, matches int, logger *log.Logger) *ThresholdBot {
	return &ThresholdBot{
		matchLimit: matchLimit{matches: matches},
		standOn:    standOn,
		logger:     logger.WithPrefix("threshold-bot"),
	}
}

func (b *ThresholdBot) MakeDecision(view game.TableView) (game.Decision, error) {
	target := b.standOn
	if weakDealer(view.DealerUpCards) && target > weakUpCardStand {
		target = weakUpCardStand
	}

	decision := game.Stay
	if view.PlayerTotal < target {
		decision = game.Hit
	}
	b.logger.Debug("Decision", "total", view.PlayerTotal, "target", target, "decision", decision)
	return decision, nil
}

// weakDealer reports whether the dealer's first up card is 2 through 6
func weakDealer(upCards []deck.Card) bool {
	if len(upCards) == 0 {
		return false
	}
	rank := upCards[0].Rank()
	return rank >= deck.Two && rank <= deck.Six
}
