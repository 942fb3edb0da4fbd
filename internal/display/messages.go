package display

import (
	"fmt"
	"strings"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/game"
)

// Welcome is the greeting shown before the first match
func (r *Renderer) Welcome(rules config.Rules) string {
	lines := []string{
		r.styles.Header.Render("Welcome to Twenty One!"),
		fmt.Sprintf("Your balance is $%d. Each round requires a bet of $1.", rules.StartingBalance),
		fmt.Sprintf("The game will end when you go broke or increase your balance to $%d.", rules.RichBalance()),
		fmt.Sprintf("The dealer stands on %d. Good luck!", rules.DealerStand),
	}
	return strings.Join(lines, "\n")
}

// Goodbye is the farewell shown when play ends
func (r *Renderer) Goodbye(results []*game.MatchResult) string {
	var rich, broke int
	for _, m := range results {
		if m.Rich {
			rich++
		}
		if m.Broke {
			broke++
		}
	}

	var b strings.Builder
	if len(results) > 0 {
		fmt.Fprintf(&b, "Matches played: %d (%s, %s)\n", len(results),
			r.styles.Success.Render(fmt.Sprintf("%d won", rich)),
			r.styles.Error.Render(fmt.Sprintf("%d lost", broke)))
	}
	b.WriteString("Thank you for playing. See you next time!")
	return b.String()
}

// Rules describes the table rules in plain text
func Rules(rules config.Rules) string {
	return fmt.Sprintf(`Twenty One

  Starting balance   $%d
  Rich balance       $%d
  Bet per round      $1
  Dealer stands on   %d
  Reshuffle at       %d cards or fewer (%.0f%% penetration)

Cards 2-10 count their number, J/Q/K count 10 and aces count 11 or 1.
Closest to 21 without going over wins the round; a tie returns the bet.`,
		rules.StartingBalance, rules.RichBalance(), rules.DealerStand,
		rules.ReshuffleThreshold(), rules.Penetration*100)
}
