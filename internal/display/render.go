package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
)

// Renderer turns game events into styled text. The wording comes from
// game.EventFormatter; Renderer only adds color.
type Renderer struct {
	styles     *Styles
	formatter  *game.EventFormatter
	playerName string
}

// NewRenderer creates a renderer for the named player
func NewRenderer(styles *Styles, playerName string, showDeckCount bool) *Renderer {
	if playerName == "" {
		playerName = "Player"
	}
	return &Renderer{
		styles: styles,
		formatter: game.NewEventFormatter(game.FormattingOptions{
			ShowDeckCount: showDeckCount,
			PlayerName:    playerName,
		}),
		playerName: playerName,
	}
}

// Styles returns the styles the renderer draws with
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Card renders a single card in its suit color. Face-down cards show only
// the placeholder.
func (r *Renderer) Card(c deck.Card) string {
	switch {
	case c.IsHidden():
		return r.styles.Hidden.Render(deck.HiddenPlaceholder)
	case c.IsRed():
		return r.styles.RedCard.Render(c.String())
	default:
		return r.styles.BlackCard.Render(c.String())
	}
}

// Cards renders a hand the way Hand.JoinCards does, with color
func (r *Renderer) Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, ", ")
}

// Hand renders a labelled hand with its total
func (r *Renderer) Hand(owner string, cards []deck.Card, total string) string {
	return fmt.Sprintf("%s's hand: %s (total %s)", owner, r.Cards(cards), total)
}

// Event renders any game event, or "" when there is nothing to show
func (r *Renderer) Event(event game.GameEvent) string {
	switch e := event.(type) {
	case game.MatchStartEvent:
		return r.styles.Header.Render(r.formatter.FormatMatchStart(e))

	case game.RoundStartEvent:
		lines := strings.Split(r.formatter.FormatRoundStart(e), "\n")
		lines[0] = r.styles.Header.Render(lines[0])
		for i := 1; i < len(lines); i++ {
			lines[i] = r.styles.Warning.Render(lines[i])
		}
		return strings.Join(lines, "\n")

	case game.DealEvent:
		return r.Hand("Dealer", e.DealerCards, e.DealerTotal) + "\n" +
			r.Hand(r.playerName, e.PlayerCards, e.PlayerTotal)

	case game.PlayerActionEvent:
		if e.Decision == game.Hit {
			line := fmt.Sprintf("%s hits: %s (total %d)", e.Player, r.Card(e.Card), e.Total)
			if e.Busted {
				line += " " + r.styles.Error.Render("BUST")
			}
			return line
		}
		return r.formatter.FormatPlayerAction(e)

	case game.DealerRevealEvent:
		return fmt.Sprintf("Dealer reveals %s: %s (total %d)", r.Card(e.HoleCard), r.Cards(e.Cards), e.Total)

	case game.DealerActionEvent:
		if e.Decision == game.Hit {
			line := fmt.Sprintf("Dealer hits: %s (total %d)", r.Card(e.Card), e.Total)
			if e.Total > game.TwentyOne {
				line += " " + r.styles.Error.Render("BUST")
			}
			return line
		}
		return r.formatter.FormatDealerAction(e)

	case game.RoundEndEvent:
		return r.OutcomeStyle(e.Outcome).Render(r.formatter.OutcomeMessage(e.Outcome)) + " " +
			r.styles.Balance.Render(fmt.Sprintf("Balance: $%d", e.Balance))

	case game.MatchEndEvent:
		line := r.formatter.FormatMatchEnd(e)
		if e.Rich {
			return r.styles.Success.Render(line)
		}
		return r.styles.Error.Render(line)

	case game.DeckExhaustedEvent:
		return r.styles.Warning.Render(r.formatter.Format(e))

	default:
		return ""
	}
}

// OutcomeStyle picks the color for an outcome from the player's side
func (r *Renderer) OutcomeStyle(outcome game.Outcome) lipgloss.Style {
	switch {
	case outcome.Delta() > 0:
		return r.styles.Success
	case outcome.Delta() < 0:
		return r.styles.Error
	default:
		return r.styles.Warning
	}
}
