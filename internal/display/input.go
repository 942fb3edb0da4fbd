package display

import (
	"errors"
	"strings"

	"github.com/lox/twentyone/internal/game"
)

// Prompts shown when asking for input, and the replies to bad input
const (
	DecisionPrompt  = "Would you like to (h)it or (s)tay?"
	PlayAgainPrompt = "Would you like to play again (y/n)?"

	InvalidDecisionMessage = "Not a valid decision. " + DecisionPrompt
	InvalidAnswerMessage   = "Not a valid answer. " + PlayAgainPrompt
)

var (
	// ErrInvalidDecision is returned for input that is not hit or stay
	ErrInvalidDecision = errors.New("invalid decision")
	// ErrInvalidAnswer is returned for input that is not yes or no
	ErrInvalidAnswer = errors.New("invalid answer")
)

// IsQuit reports whether the input asks to leave the game
func IsQuit(input string) bool {
	switch normalize(input) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

// ParseDecision converts user input into a decision
func ParseDecision(input string) (game.Decision, error) {
	switch normalize(input) {
	case "h", "hit":
		return game.Hit, nil
	case "s", "stay", "stand":
		return game.Stay, nil
	default:
		return game.Stay, ErrInvalidDecision
	}
}

// ParseAnswer converts a yes/no answer
func ParseAnswer(input string) (bool, error) {
	switch normalize(input) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidAnswer
	}
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
