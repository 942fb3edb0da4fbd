package game

import (
	"fmt"
	"strings"

	"github.com/lox/twentyone/internal/deck"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowDeckCount bool   // Include cards remaining on round start
	PlayerName    string // Name used for the player in outcome lines
}

// EventFormatter provides centralized formatting for all game events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	if opts.PlayerName == "" {
		opts.PlayerName = "Player"
	}
	return &EventFormatter{opts: opts}
}

// Format renders any game event as a single line, or "" for events with
// nothing to show
func (ef *EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case MatchStartEvent:
		return ef.FormatMatchStart(e)
	case MatchEndEvent:
		return ef.FormatMatchEnd(e)
	case RoundStartEvent:
		return ef.FormatRoundStart(e)
	case DealEvent:
		return ef.FormatDeal(e)
	case PlayerActionEvent:
		return ef.FormatPlayerAction(e)
	case DealerRevealEvent:
		return fmt.Sprintf("Dealer reveals %s: %s (total %d)", e.HoleCard, formatCards(e.Cards), e.Total)
	case DealerActionEvent:
		return ef.FormatDealerAction(e)
	case RoundEndEvent:
		return ef.FormatRoundEnd(e)
	case DeckExhaustedEvent:
		return fmt.Sprintf("The deck ran out during round %d. Shuffling a new deck and replaying it.", e.Round)
	default:
		return ""
	}
}

// FormatMatchStart formats a match start event
func (ef *EventFormatter) FormatMatchStart(event MatchStartEvent) string {
	return fmt.Sprintf("Match %d: balance $%d. Each round is a $1 bet; the match ends at $0 or $%d.",
		event.Match, event.Balance, event.RichBalance)
}

// FormatMatchEnd formats a match end event
func (ef *EventFormatter) FormatMatchEnd(event MatchEndEvent) string {
	switch {
	case event.Rich:
		return fmt.Sprintf("%s reached $%d after %d rounds. You win the match!", ef.opts.PlayerName, event.Balance, event.Rounds)
	case event.Broke:
		return fmt.Sprintf("%s is broke after %d rounds. The house wins the match.", ef.opts.PlayerName, event.Rounds)
	default:
		return fmt.Sprintf("Match over after %d rounds with $%d.", event.Rounds, event.Balance)
	}
}

// FormatRoundStart formats a round start event
func (ef *EventFormatter) FormatRoundStart(event RoundStartEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Round %d (balance $%d) ---", event.Round, event.Balance)
	if event.Reshuffled {
		fmt.Fprintf(&b, "\nThere are only %d cards left in the deck.", event.CardsLeft)
		b.WriteString("\nShuffling a new deck for this round...")
	}
	if ef.opts.ShowDeckCount {
		fmt.Fprintf(&b, "\n%d cards left in the deck", event.CardsRemaining)
	}
	return b.String()
}

// FormatDeal formats the opening deal
func (ef *EventFormatter) FormatDeal(event DealEvent) string {
	return fmt.Sprintf("Dealer's hand: %s (total %s)\n%s's hand: %s (total %s)",
		formatCards(event.DealerCards), event.DealerTotal,
		ef.opts.PlayerName, formatCards(event.PlayerCards), event.PlayerTotal)
}

// FormatPlayerAction formats a hit or stay
func (ef *EventFormatter) FormatPlayerAction(event PlayerActionEvent) string {
	switch event.Decision {
	case Hit:
		line := fmt.Sprintf("%s hits: %s (total %d)", event.Player, event.Card, event.Total)
		if event.Busted {
			line += " BUST"
		}
		return line
	default:
		return fmt.Sprintf("%s stays on %d", event.Player, event.Total)
	}
}

// FormatDealerAction formats a dealer hit or stand
func (ef *EventFormatter) FormatDealerAction(event DealerActionEvent) string {
	if event.Decision == Hit {
		line := fmt.Sprintf("Dealer hits: %s (total %d)", event.Card, event.Total)
		if event.Total > TwentyOne {
			line += " BUST"
		}
		return line
	}
	return fmt.Sprintf("Dealer stands on %d", event.Total)
}

// FormatRoundEnd formats the round outcome
func (ef *EventFormatter) FormatRoundEnd(event RoundEndEvent) string {
	return fmt.Sprintf("%s Balance: $%d", ef.OutcomeMessage(event.Outcome), event.Balance)
}

// OutcomeMessage is the announcement for an outcome
func (ef *EventFormatter) OutcomeMessage(outcome Outcome) string {
	name := ef.opts.PlayerName
	switch outcome {
	case PlayerBust:
		return fmt.Sprintf("%s busts. Dealer wins!", name)
	case DealerBust:
		return fmt.Sprintf("Dealer busts. %s wins!", name)
	case PlayerWin:
		return fmt.Sprintf("%s wins!", name)
	case DealerWin:
		return "Dealer wins!"
	case Tie:
		return "It's a tie!"
	default:
		return ""
	}
}

// formatCards joins cards the same way Hand.JoinCards does
func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, ", ")
}
