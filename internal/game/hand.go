package game

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lox/twentyone/internal/deck"
)

// TwentyOne is the best possible hand total; anything above it is a bust
const TwentyOne = 21

// aceAdjustment is what counting an ace as 1 instead of 11 takes off a total
const aceAdjustment = 10

// minVisibleCards is how many face-up cards a hand needs for a known total
const minVisibleCards = 2

// ErrValueUnknown is returned when a hand total is needed while too few of
// its cards are face up
var ErrValueUnknown = errors.New("hand value unknown while hole card is hidden")

// Hand is an ordered set of cards owned by a single participant.
//
// A hand may conceal at most one card, the hole card. The concealed card is
// tracked by an explicit reference rather than by position, so dealing more
// cards after hiding never changes which card is face down.
type Hand struct {
	cards     []deck.Card
	hole      int
	concealed bool
}

// Add appends a card to the hand
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Reset discards every card
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
	h.hole = 0
	h.concealed = false
}

// HideCard turns the most recently added card face down and makes it the
// hole card. Any previous hole card is turned back up.
func (h *Hand) HideCard() {
	if len(h.cards) == 0 {
		return
	}
	h.RevealCard()

	h.hole = len(h.cards) - 1
	h.cards[h.hole].Hide()
	h.concealed = true
}

// RevealCard turns the hole card face up. It does nothing when no card is
// concealed.
func (h *Hand) RevealCard() {
	if !h.concealed {
		return
	}
	h.cards[h.hole].Reveal()
	h.concealed = false
}

// HoleCard returns the concealed card, if any
func (h *Hand) HoleCard() (deck.Card, bool) {
	if !h.concealed {
		return deck.Card{}, false
	}
	return h.cards[h.hole], true
}

// HasHiddenCard reports whether a hole card is face down
func (h *Hand) HasHiddenCard() bool {
	return h.concealed
}

// Value returns the hand total over face-up cards. ok is false while fewer
// than two cards are face up.
//
// Aces start at 11. For each visible ace, in turn, 10 is taken off if the
// running total is still above 21. The loop runs once per ace and checks the
// total each time; it is not a "reduce until safe" loop.
func (h *Hand) Value() (total int, ok bool) {
	visible, aces := 0, 0
	for _, card := range h.cards {
		if card.IsHidden() {
			continue
		}
		visible++
		total += card.Value()
		if card.IsAce() {
			aces++
		}
	}

	if visible < minVisibleCards {
		return 0, false
	}

	for range aces {
		if total > TwentyOne {
			total -= aceAdjustment
		}
	}

	return total, true
}

// Total is Value with ErrValueUnknown in place of ok=false
func (h *Hand) Total() (int, error) {
	total, ok := h.Value()
	if !ok {
		return 0, ErrValueUnknown
	}
	return total, nil
}

// IsBusted reports whether the hand total is over 21
func (h *Hand) IsBusted() (bool, error) {
	total, err := h.Total()
	if err != nil {
		return false, err
	}
	return total > TwentyOne, nil
}

// ValueString renders the total for display, or "unknown"
func (h *Hand) ValueString() string {
	total, ok := h.Value()
	if !ok {
		return "unknown"
	}
	return strconv.Itoa(total)
}

// JoinCards renders every card separated by commas. Face-down cards show as
// a placeholder.
func (h *Hand) JoinCards() string {
	parts := make([]string, len(h.cards))
	for i, card := range h.cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, ", ")
}
