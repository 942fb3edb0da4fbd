package display

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/game"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func newTestRenderer() *Renderer {
	lipgloss.SetColorProfile(termenv.Ascii)
	return NewRenderer(NewStyles(ThemeDefault), "Alice", false)
}

func TestRenderCards(t *testing.T) {
	r := newTestRenderer()

	hidden := deck.NewCard(deck.Spades, deck.Queen)
	hidden.Hide()

	out := plain(r.Cards([]deck.Card{deck.NewCard(deck.Hearts, deck.Ace), hidden}))
	assert.Equal(t, "A♥, [hidden]", out)
}

func TestRenderDealNeverShowsHoleCard(t *testing.T) {
	r := newTestRenderer()

	player := &game.Hand{}
	player.Add(deck.NewCard(deck.Clubs, deck.Ten))
	player.Add(deck.NewCard(deck.Hearts, deck.Nine))

	dealer := &game.Hand{}
	dealer.Add(deck.NewCard(deck.Diamonds, deck.Five))
	dealer.Add(deck.NewCard(deck.Spades, deck.King))
	dealer.HideCard()

	out := plain(r.Event(game.NewDealEvent(player, dealer)))
	assert.Contains(t, out, "Dealer's hand: 5♦, [hidden] (total unknown)")
	assert.Contains(t, out, "Alice's hand: 10♣, 9♥ (total 19)")
	assert.NotContains(t, out, "K")
}

func TestRenderEvents(t *testing.T) {
	r := newTestRenderer()

	tests := []struct {
		name     string
		event    game.GameEvent
		expected string
	}{
		{"round start", game.NewRoundStartEvent("m", 2, true, 9, 52, 5), "--- Round 2 (balance $5) ---\nThere are only 9 cards left in the deck.\nShuffling a new deck for this round..."},
		{"player hit bust", game.NewPlayerActionEvent("Alice", game.Hit, deck.NewCard(deck.Spades, deck.King), 25, true), "Alice hits: K♠ (total 25) BUST"},
		{"player stay", game.NewPlayerActionEvent("Alice", game.Stay, deck.Card{}, 18, false), "Alice stays on 18"},
		{"dealer stand", game.NewDealerActionEvent(game.Stay, deck.Card{}, 17), "Dealer stands on 17"},
		{"dealer bust", game.NewDealerActionEvent(game.Hit, deck.NewCard(deck.Clubs, deck.Nine), 24), "Dealer hits: 9♣ (total 24) BUST"},
		{"round end", game.NewRoundEndEvent("m", &game.RoundResult{Outcome: game.DealerBust, Balance: 6}), "Dealer busts. Alice wins! Balance: $6"},
		{"match end", game.NewMatchEndEvent("m", 12, 10, true, false), "Alice reached $10 after 12 rounds. You win the match!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, plain(r.Event(tt.event)))
		})
	}
}

func TestOutcomeStyle(t *testing.T) {
	r := newTestRenderer()
	styles := r.Styles()

	assert.Equal(t, styles.Success, r.OutcomeStyle(game.PlayerWin))
	assert.Equal(t, styles.Error, r.OutcomeStyle(game.PlayerBust))
	assert.Equal(t, styles.Warning, r.OutcomeStyle(game.Tie))
}

func TestParseDecision(t *testing.T) {
	tests := []struct {
		input    string
		expected game.Decision
		valid    bool
	}{
		{"h", game.Hit, true},
		{" HIT ", game.Hit, true},
		{"s", game.Stay, true},
		{"stay", game.Stay, true},
		{"stand", game.Stay, true},
		{"", game.Stay, false},
		{"double", game.Stay, false},
	}

	for _, tt := range tests {
		decision, err := ParseDecision(tt.input)
		if !tt.valid {
			assert.ErrorIs(t, err, ErrInvalidDecision, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, decision)
	}
}

func TestParseAnswer(t *testing.T) {
	for _, yes := range []string{"y", "Yes", " y "} {
		again, err := ParseAnswer(yes)
		require.NoError(t, err)
		assert.True(t, again)
	}
	for _, no := range []string{"n", "NO"} {
		again, err := ParseAnswer(no)
		require.NoError(t, err)
		assert.False(t, again)
	}
	_, err := ParseAnswer("maybe")
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	assert.True(t, IsQuit("Quit"))
	assert.False(t, IsQuit("hit"))
}

func TestMessages(t *testing.T) {
	r := newTestRenderer()
	rules := config.DefaultRules()

	welcome := plain(r.Welcome(rules))
	assert.Contains(t, welcome, "Welcome to Twenty One!")
	assert.Contains(t, welcome, "Your balance is $5")
	assert.Contains(t, welcome, "$10")

	goodbye := plain(r.Goodbye([]*game.MatchResult{{Rich: true}, {Broke: true}, {Broke: true}}))
	assert.Contains(t, goodbye, "Matches played: 3 (1 won, 2 lost)")
	assert.Contains(t, goodbye, "Thank you for playing")

	assert.Contains(t, Rules(rules), "13 cards or fewer")
}

func TestNewStylesUnknownTheme(t *testing.T) {
	assert.Equal(t, NewStyles(ThemeDefault), NewStyles("neon"))
	assert.NotEqual(t, NewStyles(ThemeDefault), NewStyles(ThemeLight))
}
