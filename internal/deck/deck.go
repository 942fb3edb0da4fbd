package deck

import (
	"errors"
	"math"
	rand "math/rand/v2"
)

// Size is the number of cards in a full deck
const Size = len(Suits) * len(Ranks)

// ErrEmptyDeck is returned when dealing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// Deck represents a deck of playing cards. The top of the deck is the end
// of the slice.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full, shuffled 52-card deck using the given random source
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.Reset()
	return d
}

// NewStacked creates a deck that deals the given cards in order, first card
// first. It is used to replay known sequences; Reset still produces a full
// deck shuffled with rng.
func NewStacked(rng *rand.Rand, cards ...Card) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{
		cards: make([]Card, len(cards), max(len(cards), Size)),
		rng:   rng,
	}
	for i, card := range cards {
		d.cards[len(cards)-1-i] = card
	}
	return d
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.cards = d.cards[:0]

	for _, rank := range Ranks {
		for _, suit := range Suits {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	d.shuffle()
}

// shuffle randomizes the order of cards using Fisher-Yates
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealOne removes and returns the top card from the deck
func (d *Deck) DealOne() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// NeedsReshuffle reports whether the remaining count is at or below threshold
func (d *Deck) NeedsReshuffle(threshold int) bool {
	return len(d.cards) <= threshold
}

// ReshuffleThreshold converts a penetration ratio (the fraction of the deck
// dealt before a reshuffle) into a remaining-card threshold.
func ReshuffleThreshold(penetration float64) int {
	return int(math.Floor(float64(Size) * (1 - penetration)))
}
