package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/twentyone/internal/deck"
)

func TestFormatOutcomeMessages(t *testing.T) {
	ef := NewEventFormatter(FormattingOptions{PlayerName: "Alice"})

	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{PlayerBust, "Alice busts. Dealer wins!"},
		{DealerBust, "Dealer busts. Alice wins!"},
		{PlayerWin, "Alice wins!"},
		{DealerWin, "Dealer wins!"},
		{Tie, "It's a tie!"},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, ef.OutcomeMessage(tt.outcome))
		})
	}
}

func TestFormatDealMasksHoleCard(t *testing.T) {
	ef := NewEventFormatter(FormattingOptions{})

	player := handOf(card(deck.Ace, deck.Spades), card(deck.Nine, deck.Clubs))
	dealer := handOf(card(deck.King, deck.Hearts), card(deck.Queen, deck.Diamonds))
	dealer.HideCard()

	line := ef.Format(NewDealEvent(player, dealer))
	assert.Contains(t, line, "Dealer's hand: K♥, [hidden] (total unknown)")
	assert.Contains(t, line, "Player's hand: A♠, 9♣ (total 20)")
	assert.NotContains(t, line, "Q")
}

func TestFormatRoundStart(t *testing.T) {
	ef := NewEventFormatter(FormattingOptions{ShowDeckCount: true})

	line := ef.Format(NewRoundStartEvent("m", 3, true, 11, 52, 7))
	assert.Contains(t, line, "Round 3 (balance $7)")
	assert.Contains(t, line, "There are only 11 cards left in the deck.\nShuffling a new deck")
	assert.Contains(t, line, "52 cards left")

	line = NewEventFormatter(FormattingOptions{}).Format(NewRoundStartEvent("m", 4, false, 30, 30, 7))
	assert.NotContains(t, line, "Shuffling")
	assert.NotContains(t, line, "cards left")
}

func TestFormatActions(t *testing.T) {
	ef := NewEventFormatter(FormattingOptions{})

	assert.Equal(t, "Player hits: K♦ (total 26) BUST",
		ef.Format(NewPlayerActionEvent("Player", Hit, card(deck.King, deck.Diamonds), 26, true)))
	assert.Equal(t, "Player stays on 18",
		ef.Format(NewPlayerActionEvent("Player", Stay, deck.Card{}, 18, false)))
	assert.Equal(t, "Dealer hits: 5♣ (total 22) BUST",
		ef.Format(NewDealerActionEvent(Hit, card(deck.Five, deck.Clubs), 22)))
	assert.Equal(t, "Dealer stands on 17",
		ef.Format(NewDealerActionEvent(Stay, deck.Card{}, 17)))
}

func TestFormatRoundEndAndMatch(t *testing.T) {
	ef := NewEventFormatter(FormattingOptions{})

	line := ef.Format(NewRoundEndEvent("m", &RoundResult{Round: 2, Outcome: PlayerWin, Balance: 6}))
	assert.Equal(t, "Player wins! Balance: $6", line)

	assert.Contains(t, ef.Format(NewMatchEndEvent("m", 9, 10, true, false)), "You win the match")
	assert.Contains(t, ef.Format(NewMatchEndEvent("m", 9, 0, false, true)), "broke")
	assert.Contains(t, ef.Format(NewMatchStartEvent("m", 1, 5, 10)), "$0 or $10")
}
