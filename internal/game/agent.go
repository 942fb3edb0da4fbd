package game

import (
	"errors"

	"github.com/lox/twentyone/internal/deck"
)

// Decision is a player's choice during their turn
type Decision int

const (
	Stay Decision = iota
	Hit
)

// String returns the string representation of a decision
func (d Decision) String() string {
	switch d {
	case Stay:
		return "stay"
	case Hit:
		return "hit"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the known decisions
func (d Decision) Valid() bool {
	return d == Stay || d == Hit
}

var (
	// ErrQuit is returned by an agent that wants to leave the table
	ErrQuit = errors.New("player quit")

	// ErrInvalidDecision is returned when an agent hands back a decision
	// outside Hit and Stay
	ErrInvalidDecision = errors.New("invalid decision")
)

// TableView is the read-only state of a round as the player sees it
type TableView struct {
	MatchID        string
	Round          int
	PlayerCards    []deck.Card
	PlayerTotal    int
	DealerUpCards  []deck.Card // face-up dealer cards only
	Balance        int
	CardsRemaining int
}

// MatchSummary describes a finished match when offering another
type MatchSummary struct {
	MatchID      string
	Match        int
	Rounds       int
	FinalBalance int
	Rich         bool
	Broke        bool
}

// Agent represents any entity (human or bot) that makes decisions for the
// player. Agents only ever return validated choices; an error aborts play.
type Agent interface {
	// MakeDecision chooses Hit or Stay for the current turn
	MakeDecision(view TableView) (Decision, error)

	// PlayAgain reports whether to start another match
	PlayAgain(summary MatchSummary) (bool, error)
}
