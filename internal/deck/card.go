package deck

import "strconv"

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck order
var Suits = [...]Suit{Hearts, Diamonds, Clubs, Spades}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in deck order
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

const (
	faceValue = 10
	aceValue  = 11
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return strconv.Itoa(int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Value returns the blackjack value of the rank with aces counted high
func (r Rank) Value() int {
	switch r {
	case Jack, Queen, King:
		return faceValue
	case Ace:
		return aceValue
	default:
		return int(r)
	}
}

// HiddenPlaceholder is what a face-down card renders as
const HiddenPlaceholder = "[hidden]"

// Card represents a playing card. Rank and suit are fixed at construction,
// only the face-down flag changes.
type Card struct {
	suit   Suit
	rank   Rank
	hidden bool
}

// NewCard creates a new face-up card
func NewCard(suit Suit, rank Rank) Card {
	return Card{suit: suit, rank: rank}
}

// Suit returns the card suit
func (c Card) Suit() Suit { return c.suit }

// Rank returns the card rank
func (c Card) Rank() Rank { return c.rank }

// Value returns the card value: faces are 10, aces 11, pips their number
func (c Card) Value() int {
	return c.rank.Value()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.suit.IsRed()
}

// IsHidden reports whether the card is face down
func (c Card) IsHidden() bool {
	return c.hidden
}

// Hide turns the card face down. Hiding a hidden card is a no-op.
func (c *Card) Hide() {
	c.hidden = true
}

// Reveal turns the card face up. Revealing a visible card is a no-op.
func (c *Card) Reveal() {
	c.hidden = false
}

// String returns the string representation of a card (e.g., "A♠").
// Face-down cards never expose rank or suit.
func (c Card) String() string {
	if c.hidden {
		return HiddenPlaceholder
	}
	return c.rank.String() + c.suit.String()
}
