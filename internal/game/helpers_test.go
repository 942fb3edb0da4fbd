package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/randutil"
)

// card builds a face-up card for tests
func card(rank deck.Rank, suit deck.Suit) deck.Card {
	return deck.NewCard(suit, rank)
}

// handOf builds a hand holding the given cards in order
func handOf(cards ...deck.Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// stackedRules never reshuffles a non-empty deck, so stacked decks are
// dealt exactly as written
func stackedRules() config.Rules {
	rules := config.DefaultRules()
	rules.Penetration = 0.99
	return rules
}

// ScriptedAgent follows a predetermined script, then stays
type ScriptedAgent struct {
	decisions []Decision
	again     []bool
	views     []TableView
	summaries []MatchSummary
}

func (s *ScriptedAgent) MakeDecision(view TableView) (Decision, error) {
	s.views = append(s.views, view)
	if len(s.decisions) == 0 {
		return Stay, nil
	}
	d := s.decisions[0]
	s.decisions = s.decisions[1:]
	return d, nil
}

func (s *ScriptedAgent) PlayAgain(summary MatchSummary) (bool, error) {
	s.summaries = append(s.summaries, summary)
	if len(s.again) == 0 {
		return false, nil
	}
	a := s.again[0]
	s.again = s.again[1:]
	return a, nil
}

// eventRecorder captures events for assertions
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) types() []EventType {
	types := make([]EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.EventType()
	}
	return types
}

// newStackedEngine builds an engine over a stacked deck and records events
func newStackedEngine(t *testing.T, rules config.Rules, agent Agent, cards ...deck.Card) (*Engine, *eventRecorder) {
	t.Helper()
	recorder := &eventRecorder{}
	e := NewEngine(rules, agent, quietLogger(),
		WithDeck(deck.NewStacked(randutil.New(1), cards...)),
		WithIDGenerator(func() string { return "match-test" }),
	)
	e.GetEventBus().Subscribe(recorder)
	return e, recorder
}
