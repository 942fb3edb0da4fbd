package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/deck"
)

func TestDetermineOutcome(t *testing.T) {
	tests := []struct {
		name     string
		player   []deck.Card
		dealer   []deck.Card
		expected Outcome
	}{
		{
			name:     "player higher",
			player:   []deck.Card{card(deck.King, deck.Hearts), card(deck.Queen, deck.Spades)},
			dealer:   []deck.Card{card(deck.Ten, deck.Clubs), card(deck.Eight, deck.Hearts)},
			expected: PlayerWin,
		},
		{
			name:     "dealer higher",
			player:   []deck.Card{card(deck.Ten, deck.Hearts), card(deck.Seven, deck.Spades)},
			dealer:   []deck.Card{card(deck.Ten, deck.Clubs), card(deck.Nine, deck.Hearts)},
			expected: DealerWin,
		},
		{
			name:     "equal totals",
			player:   []deck.Card{card(deck.King, deck.Hearts), card(deck.Ten, deck.Spades)},
			dealer:   []deck.Card{card(deck.Queen, deck.Clubs), card(deck.Jack, deck.Hearts)},
			expected: Tie,
		},
		{
			name:     "player busts",
			player:   []deck.Card{card(deck.King, deck.Hearts), card(deck.Six, deck.Spades), card(deck.Nine, deck.Clubs)},
			dealer:   []deck.Card{card(deck.Ten, deck.Clubs), card(deck.Six, deck.Hearts)},
			expected: PlayerBust,
		},
		{
			name:     "player bust beats dealer bust",
			player:   []deck.Card{card(deck.King, deck.Hearts), card(deck.Six, deck.Spades), card(deck.Nine, deck.Clubs)},
			dealer:   []deck.Card{card(deck.Ten, deck.Clubs), card(deck.Six, deck.Hearts), card(deck.Queen, deck.Diamonds)},
			expected: PlayerBust,
		},
		{
			name:     "dealer busts",
			player:   []deck.Card{card(deck.Two, deck.Hearts), card(deck.Three, deck.Spades)},
			dealer:   []deck.Card{card(deck.Ten, deck.Clubs), card(deck.Six, deck.Hearts), card(deck.Queen, deck.Diamonds)},
			expected: DealerBust,
		},
		{
			name:     "both on twenty one tie",
			player:   []deck.Card{card(deck.Ace, deck.Hearts), card(deck.King, deck.Spades)},
			dealer:   []deck.Card{card(deck.Seven, deck.Clubs), card(deck.Seven, deck.Hearts), card(deck.Seven, deck.Diamonds)},
			expected: Tie,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := DetermineOutcome(handOf(tt.player...), handOf(tt.dealer...))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, outcome)
		})
	}
}

func TestDetermineOutcomeUnknownValue(t *testing.T) {
	dealer := handOf(card(deck.Ten, deck.Clubs), card(deck.Eight, deck.Hearts))
	dealer.HideCard()

	_, err := DetermineOutcome(handOf(card(deck.King, deck.Hearts), card(deck.Queen, deck.Spades)), dealer)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValueUnknown)
	assert.Contains(t, err.Error(), "dealer hand")

	_, err = DetermineOutcome(handOf(card(deck.King, deck.Hearts)), handOf(card(deck.Ten, deck.Clubs), card(deck.Eight, deck.Hearts)))
	assert.ErrorIs(t, err, ErrValueUnknown)
	assert.Contains(t, err.Error(), "player hand")
}

func TestOutcomeDelta(t *testing.T) {
	assert.Equal(t, -1, PlayerBust.Delta())
	assert.Equal(t, 1, DealerBust.Delta())
	assert.Equal(t, 1, PlayerWin.Delta())
	assert.Equal(t, -1, DealerWin.Delta())
	assert.Equal(t, 0, Tie.Delta())
}

func TestOutcomeApplySequence(t *testing.T) {
	p := NewPlayer("Player", 5, 10)

	PlayerWin.Apply(p)
	assert.Equal(t, 6, p.Balance())

	DealerWin.Apply(p)
	assert.Equal(t, 5, p.Balance())

	Tie.Apply(p)
	assert.Equal(t, 5, p.Balance())
}

func TestOutcomeString(t *testing.T) {
	expected := []string{"player_bust", "dealer_bust", "player_win", "dealer_win", "tie"}
	for i, outcome := range Outcomes {
		assert.Equal(t, expected[i], outcome.String())
	}
}
